package port

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/cmd/run"
	"github.com/overlaynet/overlayd/internal/reconciler"
)

func create(c *cli.Context, runtime run.Runtime) error {
	return submit(c, runtime, reconciler.TaskCreate)
}

func update(c *cli.Context, runtime run.Runtime) error {
	return submit(c, runtime, reconciler.TaskUpdate)
}

func del(c *cli.Context, runtime run.Runtime) error {
	id := c.Args().First()
	if len(id) < 1 {
		return errors.New("port id is required")
	}

	task := reconciler.NewTask(reconciler.TaskDelete, id, nil)
	if err := reconciler.Submit(c.Context, runtime.Store, task); err != nil {
		return err
	}

	fmt.Println(task.ID)

	return nil
}

func submit(c *cli.Context, runtime run.Runtime, op reconciler.TaskOp) error {
	d, err := loadDescriptorFile(c.String("file"))
	if err != nil {
		return err
	}

	task := reconciler.NewTask(op, d.ID, d)
	if err := reconciler.Submit(c.Context, runtime.Store, task); err != nil {
		return err
	}

	fmt.Println(task.ID)

	return nil
}
