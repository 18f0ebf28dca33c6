package reconciler

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/pkg/store/mocks"
	"github.com/overlaynet/overlayd/pkg/terrors"
	"github.com/overlaynet/overlayd/pkg/test/assert"
	"github.com/overlaynet/overlayd/pkg/test/mock"
	"github.com/overlaynet/overlayd/pkg/utils"
	testifymock "github.com/stretchr/testify/mock"
)

type fakeMutex struct{}

func (fakeMutex) Lock(context.Context) (utils.Unlocker, error) {
	return func(context.Context) error { return nil }, nil
}

func floatingDescriptor() *models.Descriptor {
	d := models.NewDescriptor()
	d.ID = "fip-port-1"
	d.NetworkID = "net-1"
	d.Kind = models.KindFloating
	return d
}

func TestTaskValid(t *testing.T) {
	d := floatingDescriptor()

	assert.NilErr(t, NewTask(TaskCreate, d.ID, d).Valid())
	assert.NilErr(t, NewTask(TaskDelete, d.ID, nil).Valid())

	assert.Err(t, NewTask(TaskCreate, d.ID, nil).Valid())
	assert.Err(t, NewTask(TaskCreate, "other", d).Valid())
	assert.Err(t, NewTask(TaskDelete, "", nil).Valid())
	assert.Err(t, NewTask(TaskOp("bogus"), d.ID, d).Valid())
}

func TestHandleCreatePersistsDescriptor(t *testing.T) {
	ms := &mocks.Store{}
	ms.On("BatchOperate", mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()

	r := New(ms)
	task := NewTask(TaskCreate, "fip-port-1", floatingDescriptor())

	assert.NilErr(t, r.Handle(context.Background(), task))
	ms.AssertExpectations(t)
}

func TestHandleRetriesOnConflict(t *testing.T) {
	ms := &mocks.Store{}
	ms.On("BatchOperate", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	r := New(ms)
	task := NewTask(TaskCreate, "fip-port-1", floatingDescriptor())

	err := r.Handle(context.Background(), task)
	assert.Err(t, err)
	assert.True(t, terrors.IsKeyBadVersionErr(err))
	ms.AssertNumberOfCalls(t, "BatchOperate", 6)
}

func TestRunResumesWatchAtDrainRevision(t *testing.T) {
	ms := &mocks.Store{}
	ms.On("NewMutex", meta.ReconcilerLockKey()).Return(fakeMutex{}, nil)
	ms.On("GetPrefix", mock.Anything, meta.TasksPrefix(), int64(0)).
		Return(nil, nil, int64(7), errors.Wrapf(terrors.ErrKeyNotExists, "%s", meta.TasksPrefix()))

	ch := make(chan clientv3.WatchResponse)
	close(ch)

	var gotRev int64
	ms.On("Watch", mock.Anything, meta.TasksPrefix(), mock.Anything).
		Run(func(args testifymock.Arguments) {
			op := clientv3.OpGet("k")
			args.Get(2).(clientv3.OpOption)(&op)
			gotRev = op.Rev()
		}).
		Return(clientv3.WatchChan(ch))

	assert.NilErr(t, New(ms).Run(context.Background()))
	assert.Equal(t, int64(8), gotRev)
	ms.AssertExpectations(t)
}

func TestHandleInvalidTaskFails(t *testing.T) {
	ms := &mocks.Store{}

	r := New(ms)
	err := r.Handle(context.Background(), &Task{ID: "t", Op: TaskCreate})
	assert.Err(t, err)
	ms.AssertNumberOfCalls(t, "BatchOperate", 0)
}

func TestPreserveFloatingIPs(t *testing.T) {
	stored := floatingDescriptor()
	stored.FloatingIPIDs = []string{"fip-1"}
	desired := floatingDescriptor()

	assert.NilErr(t, preserveFloatingIPs(stored, desired))
	assert.Equal(t, []string{"fip-1"}, desired.FloatingIPIDs)

	desired.FloatingIPIDs = []string{"fip-2"}
	assert.NilErr(t, preserveFloatingIPs(stored, desired))
	assert.Equal(t, []string{"fip-2"}, desired.FloatingIPIDs)
}
