package store

import (
	"context"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/pkg/store/etcd"
	"github.com/overlaynet/overlayd/pkg/terrors"
	"github.com/overlaynet/overlayd/pkg/utils"
)

// Store .
type Store interface {
	Create(ctx context.Context, data map[string]string, opts ...clientv3.OpOption) error

	Get(ctx context.Context, key string, obj any, opts ...clientv3.OpOption) (ver int64, err error)
	GetPrefix(ctx context.Context, prefix string, limit int64) (data map[string][]byte, vers map[string]int64, rev int64, err error)
	Exists(ctx context.Context, keys []string) (exists map[string]bool, err error)

	Update(ctx context.Context, data map[string]string, vers map[string]int64, opts ...clientv3.OpOption) error
	BatchOperate(ctx context.Context, ops []clientv3.Op, cmps ...clientv3.Cmp) (succeeded bool, err error)
	Delete(ctx context.Context, keys []string, vers map[string]int64, opts ...clientv3.OpOption) error

	Watch(ctx context.Context, prefix string, opts ...clientv3.OpOption) clientv3.WatchChan

	Close() error

	IncrUint32(ctx context.Context, key string) (uint32, error)
	NewMutex(key string) (utils.Locker, error)
}

// New .
func New(metatype string) (Store, error) {
	switch metatype {
	case "etcd":
		return etcd.New()
	default:
		return nil, errors.Wrapf(terrors.ErrInvalidValue, "invalid meta type: %s", metatype)
	}
}

var store Store

// Setup .
func Setup(metatype string) (err error) {
	store, err = New(metatype)
	return
}

// SetStore .
func SetStore(s Store) {
	store = s
}

// GetStore .
func GetStore() Store {
	return store
}

// Get .
func Get(ctx context.Context, key string, obj any, opts ...clientv3.OpOption) (int64, error) {
	return store.Get(ctx, key, obj, opts...)
}

// Close .
func Close() error {
	if store != nil {
		return store.Close()
	}
	return nil
}
