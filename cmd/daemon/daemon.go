package daemon

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/cmd/run"
	"github.com/overlaynet/overlayd/configs"
	"github.com/overlaynet/overlayd/internal/metrics"
	"github.com/overlaynet/overlayd/internal/reconciler"
	"github.com/overlaynet/overlayd/pkg/log"
	"github.com/overlaynet/overlayd/pkg/store"
	"github.com/overlaynet/overlayd/pkg/utils"
)

// Command .
func Command() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "run the overlayd daemon",
		Action: run.Run(serve),
	}
}

func serve(c *cli.Context, runtime run.Runtime) error {
	var logger = log.WithFunc("daemon.serve")

	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()
	defer store.Close() //nolint

	hn, err := utils.Hostname()
	if err != nil {
		return errors.Wrap(err, "get hostname failed")
	}
	metrics.Setup(hn)

	dump, err := configs.Conf.Dump()
	if err != nil {
		return errors.Wrap(err, "dump config failed")
	}
	logger.Infof(ctx, "%s", dump)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: configs.Conf.BindMetricsAddr, Handler: mux}

	go func() {
		logger.Infof(ctx, "metrics on %s", configs.Conf.BindMetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, err, "metrics server failed")
			metrics.IncrError()
		}
	}()

	err = reconciler.New(runtime.Store).Run(ctx)

	shutCtx, shutCancel := context.WithTimeout(context.Background(), configs.Conf.GracefulTimeout.Duration())
	defer shutCancel()
	if serr := srv.Shutdown(shutCtx); serr != nil {
		logger.Errorf(shutCtx, serr, "shutdown metrics server failed")
	}

	logger.Infof(ctx, "overlayd exited")

	return err
}
