package run

import (
	"github.com/urfave/cli/v2"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/configs"
	"github.com/overlaynet/overlayd/pkg/log"
	"github.com/overlaynet/overlayd/pkg/store"
)

var runtime Runtime

// Runner .
type Runner func(*cli.Context, Runtime) error

// Runtime .
type Runtime struct {
	ConfigFiles []string
	Store       store.Store
}

// Run wraps a command action with config, log and store setup.
func Run(fn Runner) cli.ActionFunc {
	return func(c *cli.Context) error {
		runtime.ConfigFiles = c.StringSlice("config")

		if err := setup(); err != nil {
			return err
		}
		runtime.Store = store.GetStore()

		return fn(c, runtime)
	}
}

func setup() error {
	if len(runtime.ConfigFiles) > 0 {
		if err := configs.Conf.Load(runtime.ConfigFiles); err != nil {
			return errors.Wrap(err, "load config failed")
		}
	}

	if err := log.Setup(configs.Conf.LogLevel, configs.Conf.LogFile); err != nil {
		return errors.Wrap(err, "setup log failed")
	}

	if err := store.Setup(configs.Conf.MetaType); err != nil {
		return errors.Wrap(err, "setup store failed")
	}

	return nil
}
