package meta

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/configs"
	"github.com/overlaynet/overlayd/pkg/store"
)

// Class identifies a topology object class.
type Class string

const (
	// ClassDescriptor is the cloud-facing port descriptor record.
	ClassDescriptor Class = "descriptor"
	// ClassPort .
	ClassPort Class = "port"
	// ClassChain .
	ClassChain Class = "chain"
	// ClassRule .
	ClassRule Class = "rule"
	// ClassAddrGroup .
	ClassAddrGroup Class = "addr-group"
	// ClassSubnet .
	ClassSubnet Class = "subnet"
	// ClassRouter .
	ClassRouter Class = "router"
	// ClassRoute .
	ClassRoute Class = "route"
	// ClassFloatingIP .
	ClassFloatingIP Class = "floating-ip"
	// ClassNetwork .
	ClassNetwork Class = "network"
)

// Object is a versioned, storable topology object.
type Object interface {
	Class() Class
	GetID() string
	MetaKey() string
	GetVer() int64
	SetVer(int64)
	IncrVer()
}

// Load .
func Load(ctx context.Context, obj Object) error {
	ctx, cancel := Context(ctx)
	defer cancel()

	var ver, err = store.Get(ctx, obj.MetaKey(), obj)
	if err != nil {
		return errors.Wrapf(err, "load %s %s failed", obj.Class(), obj.GetID())
	}

	obj.SetVer(ver)

	return nil
}

// Context .
func Context(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, configs.Conf.MetaCtxTimeout())
}
