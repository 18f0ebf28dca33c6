package topology

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/pkg/store"
	"github.com/overlaynet/overlayd/pkg/terrors"
)

// Reader is the synchronous, point-in-time read port over the
// topology. A NotFound failure surfaces as terrors.ErrKeyNotExists.
type Reader interface {
	Get(ctx context.Context, class meta.Class, id string) (meta.Object, error)
	GetAll(ctx context.Context, class meta.Class, ids []string) ([]meta.Object, error)
	Exists(ctx context.Context, class meta.Class, id string) (bool, error)
}

// storeReader reads through the store, caching every object for the
// duration of one translation so that two reads of the same object
// inside one invocation always agree. Not safe for concurrent use;
// allocate one per invocation.
type storeReader struct {
	s     store.Store
	cache map[string]meta.Object
	found map[string]bool
}

// NewReader .
func NewReader(s store.Store) Reader {
	return &storeReader{
		s:     s,
		cache: map[string]meta.Object{},
		found: map[string]bool{},
	}
}

func (r *storeReader) Get(ctx context.Context, class meta.Class, id string) (meta.Object, error) {
	var key = meta.ClassKey(class, id)
	if obj, ok := r.cache[key]; ok {
		return obj, nil
	}
	if found, ok := r.found[key]; ok && !found {
		return nil, errors.Wrapf(terrors.ErrKeyNotExists, "%s %s", class, id)
	}

	obj, err := models.New(class)
	if err != nil {
		return nil, err
	}

	ver, err := r.s.Get(ctx, key, obj)
	switch {
	case terrors.IsKeyNotExistsErr(err):
		r.found[key] = false
		return nil, errors.Wrapf(terrors.ErrKeyNotExists, "%s %s", class, id)
	case err != nil:
		return nil, errors.Wrapf(err, "read %s %s failed", class, id)
	}

	obj.SetVer(ver)
	r.cache[key] = obj
	r.found[key] = true

	return obj, nil
}

func (r *storeReader) GetAll(ctx context.Context, class meta.Class, ids []string) ([]meta.Object, error) {
	var objs = make([]meta.Object, 0, len(ids))
	for _, id := range ids {
		obj, err := r.Get(ctx, class, id)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

func (r *storeReader) Exists(ctx context.Context, class meta.Class, id string) (bool, error) {
	var key = meta.ClassKey(class, id)
	if found, ok := r.found[key]; ok {
		return found, nil
	}

	exists, err := r.s.Exists(ctx, []string{key})
	if err != nil {
		return false, errors.Wrapf(err, "check %s %s failed", class, id)
	}

	r.found[key] = exists[key]

	return exists[key], nil
}
