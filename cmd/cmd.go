package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/overlaynet/overlayd/cmd/daemon"
	"github.com/overlaynet/overlayd/cmd/port"
	"github.com/overlaynet/overlayd/pkg/log"
	"github.com/overlaynet/overlayd/ver"
)

func main() {
	cli.VersionPrinter = func(*cli.Context) {
		fmt.Println(ver.Version())
	}

	app := &cli.App{
		Name:  "overlayd",
		Usage: "virtual network port policy daemon",

		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "config",
				Usage: "config files",
			},
		},

		Commands: []*cli.Command{
			daemon.Command(),
			port.Command(),
		},

		Version: "v",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf(context.TODO(), err, "overlayd failed")
	}
}
