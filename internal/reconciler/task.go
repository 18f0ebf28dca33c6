package reconciler

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/pkg/store"
	"github.com/overlaynet/overlayd/pkg/terrors"
	"github.com/overlaynet/overlayd/pkg/utils"
)

// TaskOp .
type TaskOp string

const (
	// TaskCreate .
	TaskCreate TaskOp = "create"
	// TaskUpdate .
	TaskUpdate TaskOp = "update"
	// TaskDelete .
	TaskDelete TaskOp = "delete"
)

// Task is one queued descriptor change. Create and update carry the
// desired descriptor; delete carries only the port identifier.
type Task struct {
	ID         string             `json:"id"`
	Op         TaskOp             `json:"op"`
	PortID     string             `json:"port_id"`
	Descriptor *models.Descriptor `json:"descriptor,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

// NewTask .
func NewTask(op TaskOp, portID string, d *models.Descriptor) *Task {
	return &Task{
		ID:         uuid.New().String(),
		Op:         op,
		PortID:     portID,
		Descriptor: d,
		CreatedAt:  time.Now().UTC(),
	}
}

// Valid .
func (t *Task) Valid() error {
	switch t.Op {
	case TaskCreate, TaskUpdate:
		if t.Descriptor == nil {
			return errors.Wrapf(terrors.ErrInvalidTask, "%s task %s carries no descriptor", t.Op, t.ID)
		}
		if len(t.PortID) < 1 || t.PortID != t.Descriptor.ID {
			return errors.Wrapf(terrors.ErrInvalidTask, "task %s port id %s mismatches descriptor %s", t.ID, t.PortID, t.Descriptor.ID)
		}
	case TaskDelete:
		if len(t.PortID) < 1 {
			return errors.Wrapf(terrors.ErrInvalidTask, "delete task %s carries no port id", t.ID)
		}
	default:
		return errors.Wrapf(terrors.ErrInvalidTask, "unknown op %s", t.Op)
	}
	return nil
}

// Submit enqueues the task; the running reconciler picks it up through
// its watch.
func Submit(ctx context.Context, s store.Store, task *Task) error {
	if err := task.Valid(); err != nil {
		return err
	}

	enc, err := utils.JSONEncode(task, "\t")
	if err != nil {
		return errors.Wrapf(err, "encode task %s failed", task.ID)
	}

	return s.Create(ctx, map[string]string{meta.TaskKey(task.ID): string(enc)})
}
