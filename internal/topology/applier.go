package topology

import (
	"context"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/pkg/store"
	"github.com/overlaynet/overlayd/pkg/terrors"
	"github.com/overlaynet/overlayd/pkg/utils"
)

// Applier turns one operation list into a single guarded transaction.
// A failed version guard means some object changed between read and
// apply; the caller re-runs the whole translation and tries again.
type Applier struct {
	s store.Store
}

// NewApplier .
func NewApplier(s store.Store) *Applier {
	return &Applier{s: s}
}

// Apply commits the list atomically, in order. Returns
// terrors.ErrKeyBadVersion on a write conflict.
func (a *Applier) Apply(ctx context.Context, list OpList) error {
	if len(list) < 1 {
		return nil
	}

	var ops = make([]clientv3.Op, 0, len(list))
	var cmps = []clientv3.Cmp{}

	for _, op := range list {
		switch op.Kind {
		case OpCreate:
			enc, err := encodeObject(op.Object)
			if err != nil {
				return err
			}
			key := op.Object.MetaKey()
			ops = append(ops, clientv3.OpPut(key, enc))
			cmps = append(cmps, clientv3.Compare(clientv3.Version(key), "=", 0))

		case OpUpdate:
			// An update carrying a read version is guarded at it; a
			// validator update is guarded at whatever is stored right
			// now. Version 0 without a validator is an unguarded upsert.
			ver := op.Object.GetVer()
			guarded := ver > 0
			if op.Validator != nil {
				storedVer, err := a.merge(ctx, op)
				if err != nil {
					return err
				}
				ver = storedVer
				guarded = true
			}
			enc, err := encodeObject(op.Object)
			if err != nil {
				return err
			}
			key := op.Object.MetaKey()
			ops = append(ops, clientv3.OpPut(key, enc))
			if guarded {
				cmps = append(cmps, clientv3.Compare(clientv3.Version(key), "=", ver))
			}

		case OpDelete:
			key := meta.ClassKey(op.Class, op.ID)
			ops = append(ops, clientv3.OpDelete(key))
			if op.Ver > 0 {
				cmps = append(cmps, clientv3.Compare(clientv3.Version(key), "=", op.Ver))
			}

		case OpCreateRaw:
			ops = append(ops, clientv3.OpPut(op.Path, op.Value))

		case OpDeleteRaw:
			ops = append(ops, clientv3.OpDelete(op.Path))

		default:
			return errors.Wrapf(terrors.ErrUnknownOperation, "%s", op.Kind)
		}
	}

	switch succ, err := a.s.BatchOperate(ctx, ops, cmps...); {
	case err != nil:
		return errors.Wrap(err, "apply operation list failed")
	case !succ:
		return errors.Wrap(terrors.ErrKeyBadVersion, "operation list conflicted")
	}

	return nil
}

// merge runs the op's validator against the currently stored object,
// letting the desired object absorb fields the producer does not own.
// Returns the stored version for the guard, 0 when nothing is stored.
func (a *Applier) merge(ctx context.Context, op Operation) (int64, error) {
	stored, err := models.New(op.Object.Class())
	if err != nil {
		return 0, err
	}

	ver, err := a.s.Get(ctx, op.Object.MetaKey(), stored)
	switch {
	case terrors.IsKeyNotExistsErr(err):
		return 0, nil
	case err != nil:
		return 0, errors.Wrapf(err, "read stored %s failed", op.Object.MetaKey())
	}

	stored.SetVer(ver)

	if err := op.Validator(stored, op.Object); err != nil {
		return 0, errors.Wrapf(err, "validate %s failed", op.Object.MetaKey())
	}

	return ver, nil
}

func encodeObject(obj meta.Object) (string, error) {
	buf, err := utils.JSONEncode(obj, "\t")
	if err != nil {
		return "", errors.Wrapf(err, "encode %s %s failed", obj.Class(), obj.GetID())
	}
	return string(buf), nil
}
