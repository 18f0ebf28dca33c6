package tunnel

import (
	"context"
	"testing"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/pkg/store/mocks"
	"github.com/overlaynet/overlayd/pkg/test/assert"
	"github.com/overlaynet/overlayd/pkg/test/mock"
)

func TestNextKeyIsNetworkScoped(t *testing.T) {
	ms := &mocks.Store{}
	ms.On("IncrUint32", mock.Anything, meta.TunnelKeyCounterKey("net-1")).Return(uint32(1), nil).Once()
	ms.On("IncrUint32", mock.Anything, meta.TunnelKeyCounterKey("net-2")).Return(uint32(1), nil).Once()
	ms.On("IncrUint32", mock.Anything, meta.TunnelKeyCounterKey("net-1")).Return(uint32(2), nil).Once()

	a := NewAllocator(ms)
	ctx := context.Background()

	key, err := a.NextKey(ctx, "net-1")
	assert.NilErr(t, err)
	assert.Equal(t, uint32(1), key)

	key, err = a.NextKey(ctx, "net-2")
	assert.NilErr(t, err)
	assert.Equal(t, uint32(1), key)

	key, err = a.NextKey(ctx, "net-1")
	assert.NilErr(t, err)
	assert.Equal(t, uint32(2), key)

	ms.AssertExpectations(t)
}
