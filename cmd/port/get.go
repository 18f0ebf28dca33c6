package port

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/cmd/run"
	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/pkg/utils"
)

func get(c *cli.Context, _ run.Runtime) error {
	id := c.Args().First()
	if len(id) < 1 {
		return errors.New("port id is required")
	}

	d := models.NewDescriptor()
	d.ID = id
	if err := meta.Load(c.Context, d); err != nil {
		return err
	}

	enc, err := utils.JSONEncode(d, "\t")
	if err != nil {
		return errors.Wrapf(err, "encode descriptor %s failed", id)
	}

	fmt.Println(string(enc))

	return nil
}
