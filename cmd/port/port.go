package port

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/cmd/run"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/pkg/netx"
	"github.com/overlaynet/overlayd/pkg/utils"
)

// Command .
func Command() *cli.Command {
	return &cli.Command{
		Name:  "port",
		Usage: "inspect and change port descriptors",

		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "show a stored descriptor",
				ArgsUsage: "<id>",
				Action:    run.Run(get),
			},
			{
				Name:  "translate",
				Usage: "print the operation list a change would apply, without applying it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "op",
						Usage:    "create, update or delete",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "descriptor JSON file (create and update)",
					},
					&cli.StringFlag{
						Name:  "id",
						Usage: "port identifier (delete)",
					},
				},
				Action: run.Run(translate),
			},
			{
				Name:   "create",
				Usage:  "enqueue a descriptor creation",
				Flags:  fileFlag(),
				Action: run.Run(create),
			},
			{
				Name:   "update",
				Usage:  "enqueue a descriptor update",
				Flags:  fileFlag(),
				Action: run.Run(update),
			},
			{
				Name:      "delete",
				Usage:     "enqueue a descriptor deletion",
				ArgsUsage: "<id>",
				Action:    run.Run(del),
			},
		},
	}
}

func fileFlag() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Usage:    "descriptor JSON file",
			Required: true,
		},
	}
}

func loadDescriptorFile(path string) (*models.Descriptor, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s failed", path)
	}

	d := models.NewDescriptor()
	if err := utils.JSONDecode(buf, d); err != nil {
		return nil, errors.Wrapf(err, "decode %s failed", path)
	}
	if len(d.ID) < 1 {
		return nil, errors.Newf("descriptor in %s has no id", path)
	}
	for _, fip := range d.FixedIPs {
		if err := netx.CheckIPv4Addr(fip.Address); err != nil {
			return nil, errors.Wrapf(err, "descriptor in %s", path)
		}
	}
	for _, pair := range d.AllowedPairs {
		if err := netx.CheckIPv4Addr(pair.Address); err != nil {
			return nil, errors.Wrapf(err, "descriptor in %s", path)
		}
	}

	return d, nil
}
