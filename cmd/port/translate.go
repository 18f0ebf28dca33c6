package port

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/cmd/run"
	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/internal/topology"
	"github.com/overlaynet/overlayd/internal/translator"
)

// previewKeys hands out placeholder tunnel keys so a dry run never
// consumes real tokens from the network's sequence.
type previewKeys struct {
	next uint32
}

func (k *previewKeys) NextKey(context.Context, string) (uint32, error) {
	k.next++
	return k.next, nil
}

func translate(c *cli.Context, runtime run.Runtime) error {
	reader := topology.NewReader(runtime.Store)
	trans := translator.New(reader, &previewKeys{})

	var list topology.OpList
	var err error

	switch op := c.String("op"); op {
	case "create":
		d, derr := loadDescriptorFile(c.String("file"))
		if derr != nil {
			return derr
		}
		list, err = trans.Create(c.Context, d)

	case "update":
		d, derr := loadDescriptorFile(c.String("file"))
		if derr != nil {
			return derr
		}

		old := models.NewDescriptor()
		old.ID = d.ID
		if err := meta.Load(c.Context, old); err != nil {
			return err
		}
		list, err = trans.Update(c.Context, old, d)

	case "delete":
		id := c.String("id")
		if len(id) < 1 {
			return errors.New("--id is required for delete")
		}
		list, err = trans.Delete(c.Context, id)

	default:
		return errors.Newf("unknown op %s", op)
	}

	if err != nil {
		return err
	}

	for i, op := range list {
		fmt.Printf("%3d  %s\n", i+1, op)
	}
	fmt.Printf("%d operations\n", len(list))

	return nil
}
