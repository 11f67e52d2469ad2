package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/dig"

	"flora-partner-assignment/internal/logx"
	"flora-partner-assignment/internal/notify"
	"flora-partner-assignment/internal/transport/kafka"
)

// WorkerRunner runs the payments consumer
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes payment events using the provided DI container until ctx is done
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	st *storage,
	logger logx.Logger,
	consumer *kafka.Consumer,
	dispatcher *notify.Dispatcher,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: worker container misconfigured")
	}
	defer closeWorker(st, logger, consumer, dispatcher)

	if dispatcher != nil {
		dispatcher.Start(context.WithoutCancel(ctx))
	}
	logger.Info("partner-assignment-worker started")
	return consumer.Run(ctx)
}

func closeWorker(st *storage, logger logx.Logger, consumer *kafka.Consumer, dispatcher *notify.Dispatcher) {
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
	}
	if dispatcher != nil {
		if err := dispatcher.Close(); err != nil {
			logger.Error("notifier close error", logx.Err(err))
		}
	}
	st.Close()
}
