package translator

import (
	"context"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
)

// Typed wrappers over the read port; NotFound surfaces unchanged so
// callers decide whether it is tolerable.

func (t *Translator) descriptor(ctx context.Context, id string) (*models.Descriptor, error) {
	obj, err := t.reader.Get(ctx, meta.ClassDescriptor, id)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Descriptor), nil
}

func (t *Translator) port(ctx context.Context, id string) (*models.Port, error) {
	obj, err := t.reader.Get(ctx, meta.ClassPort, id)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Port), nil
}

func (t *Translator) chain(ctx context.Context, id string) (*models.Chain, error) {
	obj, err := t.reader.Get(ctx, meta.ClassChain, id)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Chain), nil
}

func (t *Translator) addrGroup(ctx context.Context, id string) (*models.AddrGroup, error) {
	obj, err := t.reader.Get(ctx, meta.ClassAddrGroup, id)
	if err != nil {
		return nil, err
	}
	return obj.(*models.AddrGroup), nil
}

func (t *Translator) addrGroups(ctx context.Context, ids []string) ([]*models.AddrGroup, error) {
	objs, err := t.reader.GetAll(ctx, meta.ClassAddrGroup, ids)
	if err != nil {
		return nil, err
	}
	groups := make([]*models.AddrGroup, 0, len(objs))
	for _, obj := range objs {
		groups = append(groups, obj.(*models.AddrGroup))
	}
	return groups, nil
}

func (t *Translator) subnet(ctx context.Context, id string) (*models.Subnet, error) {
	obj, err := t.reader.Get(ctx, meta.ClassSubnet, id)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Subnet), nil
}

func (t *Translator) route(ctx context.Context, id string) (*models.Route, error) {
	obj, err := t.reader.Get(ctx, meta.ClassRoute, id)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Route), nil
}

func (t *Translator) router(ctx context.Context, id string) (*models.Router, error) {
	obj, err := t.reader.Get(ctx, meta.ClassRouter, id)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Router), nil
}

func (t *Translator) floatingIP(ctx context.Context, id string) (*models.FloatingIP, error) {
	obj, err := t.reader.Get(ctx, meta.ClassFloatingIP, id)
	if err != nil {
		return nil, err
	}
	return obj.(*models.FloatingIP), nil
}
