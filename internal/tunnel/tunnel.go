package tunnel

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/pkg/store"
)

// KeyAllocator dispenses network-scoped tunnel-key tokens. Tokens are
// never reused within a network.
type KeyAllocator interface {
	NextKey(ctx context.Context, networkID string) (uint32, error)
}

type seqAllocator struct {
	s store.Store
}

// NewAllocator .
func NewAllocator(s store.Store) KeyAllocator {
	return &seqAllocator{s: s}
}

func (a *seqAllocator) NextKey(ctx context.Context, networkID string) (uint32, error) {
	key, err := a.s.IncrUint32(ctx, meta.TunnelKeyCounterKey(networkID))
	if err != nil {
		return 0, errors.Wrapf(err, "allocate tunnel key for network %s failed", networkID)
	}
	return key, nil
}
