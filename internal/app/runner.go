package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"go.uber.org/dig"

	"flora-partner-assignment/internal/logx"
	"flora-partner-assignment/internal/notify"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP service
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container and blocks until shutdown
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return NewLogger("info")
	}
	return logger
}

type runIn struct {
	dig.In

	Ctx        context.Context
	Logger     logx.Logger
	Server     *http.Server
	Dispatcher *notify.Dispatcher `optional:"true"`
	Storage    *storage           `optional:"true"`
	Tracing    *tracing           `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		if in.Dispatcher != nil {
			// очередь дочищается в Close, поэтому воркер не должен умирать вместе с ctx
			in.Dispatcher.Start(context.WithoutCancel(in.Ctx))
		}

		serveErr := startServer(in.Server, in.Logger)
		err := waitForShutdown(in.Ctx, in.Logger, serveErr)
		gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
		closeResources(in.Server, in.Dispatcher, in.Storage, in.Tracing, in.Logger)
		return err
	})
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("partner-assignment listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func waitForShutdown(ctx context.Context, logger logx.Logger, serveErr <-chan error) error {
	select {
	case <-ctx.Done():
		logger.Info("shutting down partner-assignment")
		return ctx.Err()
	case err := <-serveErr:
		logger.Error("listen error", logx.Err(err))
		return err
	}
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(
	server *http.Server,
	dispatcher *notify.Dispatcher,
	st *storage,
	tr *tracing,
	logger logx.Logger,
) {
	if server != nil {
		if err := server.Close(); err != nil {
			logger.Error("server close error", logx.Err(err))
		}
	}
	if dispatcher != nil {
		if err := dispatcher.Close(); err != nil {
			logger.Error("notifier close error", logx.Err(err))
		}
	}
	if tr != nil && tr.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tr.shutdown(ctx); err != nil {
			logger.Error("tracer shutdown error", logx.Err(err))
		}
	}
	st.Close()
}
