package topology

import (
	"context"
	"testing"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/pkg/store/mocks"
	"github.com/overlaynet/overlayd/pkg/terrors"
	"github.com/overlaynet/overlayd/pkg/test/assert"
	"github.com/overlaynet/overlayd/pkg/test/mock"
	testifymock "github.com/stretchr/testify/mock"
)

func testPort(id string, ver int64) *models.Port {
	p := models.NewPort()
	p.ID = id
	p.SetVer(ver)
	return p
}

func TestApplyEmptyListIsNoop(t *testing.T) {
	ms := &mocks.Store{}

	a := NewApplier(ms)
	assert.NilErr(t, a.Apply(context.Background(), nil))
	ms.AssertNotCalled(t, "BatchOperate", mock.Anything, mock.Anything)
}

func TestApplyBuildsGuards(t *testing.T) {
	ms := &mocks.Store{}

	var gotOps []clientv3.Op
	var gotCmps int
	ms.On("BatchOperate", testifymock.Anything, testifymock.Anything, testifymock.Anything, testifymock.Anything, testifymock.Anything).
		Run(func(args testifymock.Arguments) {
			gotOps = args.Get(1).([]clientv3.Op)
			gotCmps = len(args) - 2
		}).
		Return(true, nil).Once()

	var l OpList
	l.AddCreate(testPort("a", 0))          // guarded: version = 0
	l.AddUpdate(testPort("b", 7), nil)     // guarded at read version
	l.AddUpdate(testPort("c", 0), nil)     // unguarded upsert
	l.AddDeleteObj(testPort("d", 2))       // guarded delete
	l.AddDelete(meta.ClassPort, "e")       // unguarded delete
	l.AddRawCreate("/raw/entry", "")       // unguarded put
	l.AddRawDelete("/raw/other")           // unguarded delete

	a := NewApplier(ms)
	assert.NilErr(t, a.Apply(context.Background(), l))

	assert.Len(t, gotOps, 7)
	assert.Equal(t, 3, gotCmps)

	assert.True(t, gotOps[0].IsPut())
	assert.True(t, gotOps[3].IsDelete())
	assert.Equal(t, "/raw/entry", string(gotOps[5].KeyBytes()))

	ms.AssertExpectations(t)
}

func TestApplyConflictSurfacesBadVersion(t *testing.T) {
	ms := &mocks.Store{}
	ms.On("BatchOperate", testifymock.Anything, testifymock.Anything, testifymock.Anything).
		Return(false, nil).Once()

	var l OpList
	l.AddCreate(testPort("a", 0))

	a := NewApplier(ms)
	err := a.Apply(context.Background(), l)
	assert.Err(t, err)
	assert.True(t, terrors.IsKeyBadVersionErr(err))
}

func TestApplyValidatorMergesStoredState(t *testing.T) {
	ms := &mocks.Store{}

	desired := models.NewDescriptor()
	desired.ID = "port-1"
	desired.Kind = models.KindVIF

	ms.On("Get", testifymock.Anything, desired.MetaKey(), testifymock.Anything).
		Run(func(args testifymock.Arguments) {
			stored := args.Get(2).(*models.Descriptor)
			stored.ID = "port-1"
			stored.FloatingIPIDs = []string{"fip-1"}
		}).
		Return(int64(5), nil).Once()

	var gotCmps int
	ms.On("BatchOperate", testifymock.Anything, testifymock.Anything, testifymock.Anything).
		Run(func(args testifymock.Arguments) {
			gotCmps = len(args) - 2
		}).
		Return(true, nil).Once()

	var l OpList
	l.AddUpdate(desired, func(stored, des meta.Object) error {
		s := stored.(*models.Descriptor)
		d := des.(*models.Descriptor)
		if len(d.FloatingIPIDs) < 1 {
			d.FloatingIPIDs = s.FloatingIPIDs
		}
		return nil
	})

	a := NewApplier(ms)
	assert.NilErr(t, a.Apply(context.Background(), l))

	assert.Equal(t, []string{"fip-1"}, desired.FloatingIPIDs)
	assert.Equal(t, 1, gotCmps)
	ms.AssertExpectations(t)
}
