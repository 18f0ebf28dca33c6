// Package reconciler consumes queued descriptor changes, runs the
// translator against a fresh snapshot per attempt, and applies the
// resulting operation list transactionally, retrying on write
// conflicts.
package reconciler

import (
	"context"
	"sort"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/errors"
	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/overlaynet/overlayd/configs"
	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/metrics"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/internal/topology"
	"github.com/overlaynet/overlayd/internal/translator"
	"github.com/overlaynet/overlayd/internal/tunnel"
	"github.com/overlaynet/overlayd/pkg/log"
	"github.com/overlaynet/overlayd/pkg/store"
	"github.com/overlaynet/overlayd/pkg/terrors"
	"github.com/overlaynet/overlayd/pkg/utils"
)

// Reconciler .
type Reconciler struct {
	s       store.Store
	keys    tunnel.KeyAllocator
	applier *topology.Applier
}

// New .
func New(s store.Store) *Reconciler {
	return &Reconciler{
		s:       s,
		keys:    tunnel.NewAllocator(s),
		applier: topology.NewApplier(s),
	}
}

// Run drains the backlog, then follows the task prefix until the
// context is canceled. A store mutex keeps at most one instance
// consuming the queue.
func (r *Reconciler) Run(ctx context.Context) error {
	var logger = log.WithFunc("reconciler.Run")

	mutex, err := r.s.NewMutex(meta.ReconcilerLockKey())
	if err != nil {
		return errors.Wrap(err, "create reconciler mutex failed")
	}
	unlock, err := mutex.Lock(ctx)
	if err != nil {
		return errors.Wrap(err, "acquire reconciler mutex failed")
	}
	defer func() {
		if err := unlock(context.TODO()); err != nil {
			logger.Errorf(ctx, err, "release reconciler mutex failed")
		}
	}()

	rev, err := r.drain(ctx)
	if err != nil {
		return err
	}

	// The watch resumes right after the drain's read revision so a
	// task submitted between the two is not lost.
	opts := []clientv3.OpOption{}
	if rev > 0 {
		opts = append(opts, clientv3.WithRev(rev+1))
	}

	logger.Infof(ctx, "watching %s from revision %d", meta.TasksPrefix(), rev+1)
	ch := r.s.Watch(ctx, meta.TasksPrefix(), opts...)

	for {
		select {
		case <-ctx.Done():
			return nil

		case resp, ok := <-ch:
			if !ok {
				return nil
			}
			if err := resp.Err(); err != nil {
				return errors.Wrap(err, "task watch failed")
			}
			for _, ev := range resp.Events {
				if ev.Type != clientv3.EventTypePut {
					continue
				}
				r.dispatch(ctx, string(ev.Kv.Key), ev.Kv.Value)
			}
		}
	}
}

// drain handles tasks left over from a previous run, oldest key
// first, and reports the store revision the backlog was read at.
func (r *Reconciler) drain(ctx context.Context) (int64, error) {
	data, _, rev, err := r.s.GetPrefix(ctx, meta.TasksPrefix(), 0)
	switch {
	case terrors.IsKeyNotExistsErr(err):
		return rev, nil
	case err != nil:
		return 0, errors.Wrap(err, "load task backlog failed")
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		r.dispatch(ctx, key, data[key])
	}

	return rev, nil
}

// dispatch decodes and handles one task, then dequeues it. A task
// that failed permanently is logged and dequeued anyway; leaving it
// would wedge the queue on every restart.
func (r *Reconciler) dispatch(ctx context.Context, key string, value []byte) {
	var logger = log.WithFunc("reconciler.dispatch")

	task := &Task{}
	if err := utils.JSONDecode(value, task); err != nil {
		logger.Errorf(ctx, err, "decode task %s failed", key)
		metrics.IncrError()
	} else if err := r.Handle(ctx, task); err != nil {
		logger.Errorf(ctx, err, "handle task %s (%s %s) failed", task.ID, task.Op, task.PortID)
		metrics.IncrError()
	}

	if err := r.s.Delete(ctx, []string{key}, nil); err != nil {
		logger.Errorf(ctx, err, "dequeue task %s failed", key)
	}
}

// Handle runs one task to completion, retrying the whole translation
// on optimistic-concurrency conflicts.
func (r *Reconciler) Handle(ctx context.Context, task *Task) error {
	if err := task.Valid(); err != nil {
		return err
	}

	bf := backoff.WithMaxRetries(
		backoff.NewConstantBackOff(configs.Conf.ApplyRetryInterval.Duration()),
		uint64(configs.Conf.ApplyMaxRetries),
	)

	return backoff.Retry(func() error {
		err := r.handleOnce(ctx, task)
		switch {
		case terrors.IsKeyBadVersionErr(err):
			metrics.IncrApplyConflict()
			return err
		case err != nil:
			return backoff.Permanent(err)
		}
		return nil
	}, backoff.WithContext(bf, ctx))
}

// handleOnce is one translation attempt over a fresh snapshot.
func (r *Reconciler) handleOnce(ctx context.Context, task *Task) error {
	var logger = log.WithFunc("reconciler.handleOnce")

	reader := topology.NewReader(r.s)
	trans := translator.New(reader, r.keys)

	var list topology.OpList
	var kind models.PortKind
	var err error

	switch task.Op {
	case TaskCreate:
		kind = task.Descriptor.Kind
		if list, err = trans.Create(ctx, task.Descriptor); err != nil {
			return err
		}
		list.AddCreate(task.Descriptor)

	case TaskUpdate:
		kind = task.Descriptor.Kind
		old, err := r.storedDescriptor(ctx, reader, task.PortID)
		if err != nil {
			return err
		}
		if list, err = trans.Update(ctx, old, task.Descriptor); err != nil {
			return err
		}
		list.AddUpdate(task.Descriptor, preserveFloatingIPs)

	case TaskDelete:
		old, err := r.storedDescriptor(ctx, reader, task.PortID)
		if err != nil {
			return err
		}
		kind = old.Kind
		if list, err = trans.Delete(ctx, task.PortID); err != nil {
			return err
		}
		list.AddDeleteObj(old)
	}

	if err := r.applier.Apply(ctx, list); err != nil {
		return err
	}

	metrics.IncrTranslation(string(kind), string(task.Op), len(list))
	logger.Infof(ctx, "%s %s applied %d operations", task.Op, task.PortID, len(list))

	return nil
}

func (r *Reconciler) storedDescriptor(ctx context.Context, reader topology.Reader, id string) (*models.Descriptor, error) {
	obj, err := reader.Get(ctx, meta.ClassDescriptor, id)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Descriptor), nil
}

// preserveFloatingIPs keeps the stored floating-address list on a
// descriptor update; the upstream API does not echo it back.
func preserveFloatingIPs(stored, desired meta.Object) error {
	s, sok := stored.(*models.Descriptor)
	d, dok := desired.(*models.Descriptor)
	if !sok || !dok {
		return errors.Wrapf(terrors.ErrInvalidValue, "not descriptors: %s, %s", stored.Class(), desired.Class())
	}

	if len(d.FloatingIPIDs) < 1 {
		d.FloatingIPIDs = s.FloatingIPIDs
	}

	return nil
}
