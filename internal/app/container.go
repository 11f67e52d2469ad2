package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/dig"

	"flora-partner-assignment/internal/apperr"
	"flora-partner-assignment/internal/config"
	"flora-partner-assignment/internal/http/handlers"
	"flora-partner-assignment/internal/http/router"
	"flora-partner-assignment/internal/logx"
	"flora-partner-assignment/internal/metrics"
	"flora-partner-assignment/internal/notify"
	"flora-partner-assignment/internal/observability"
	"flora-partner-assignment/internal/service/assignment"
	"flora-partner-assignment/internal/service/partner"
	"flora-partner-assignment/internal/service/payments"
	"flora-partner-assignment/internal/transport/kafka"
	"flora-partner-assignment/internal/zonelock"
)

const serviceName = "partner-assignment"

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	args       []string
	dbConnect  dbConnectFunc
	registerer prometheus.Registerer
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect:  connectDbWithRetry,
		registerer: prometheus.DefaultRegisterer,
		logFatalf:  log.Fatalf,
	}
}

// WithArgs sets the command line arguments passed to config.LoadArgs
func (b *ContainerBuilder) WithArgs(args []string) *ContainerBuilder {
	b.args = args
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithRegisterer sets the Prometheus registerer for service metrics
func (b *ContainerBuilder) WithRegisterer(reg prometheus.Registerer) *ContainerBuilder {
	if reg != nil {
		b.registerer = reg
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the payments worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container, err := b.buildBase(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.buildBase(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildBase(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.args, b.registerer); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container from os.Args
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().WithArgs(os.Args[1:]).MustBuild(ctx)
}

// MustBuildWorkerContainer builds the payments worker container from os.Args
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().WithArgs(os.Args[1:]).MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, args []string, reg prometheus.Registerer) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() prometheus.Registerer { return reg },
		func() (*config.Config, error) { return config.LoadArgs(args) },
		func(cfg *config.Config) logx.Logger { return NewLogger(cfg.LogLevel) },
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc) error {
	providerStorage := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*storage, error) {
		return openStorage(ctx, cfg, logger, dbConnect)
	}
	return provideAll(container, providerStorage)
}

// tracing keeps the tracer provider and its shutdown hook together.
type tracing struct {
	provider trace.TracerProvider
	shutdown func(context.Context) error
}

func newTracing(cfg *config.Config) (*tracing, error) {
	tp, shutdown, err := observability.NewTracerProvider(cfg.TracingExporter, serviceName, os.Stdout)
	if err != nil {
		return nil, err
	}
	return &tracing{provider: tp, shutdown: shutdown}, nil
}

func newPublisher(cfg *config.Config, logger logx.Logger) (notify.Publisher, error) {
	switch cfg.Notifier.Driver {
	case config.NotifierKafka:
		return notify.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
	case config.NotifierRabbitMQ:
		return notify.DialRabbit(cfg.Notifier.RabbitURL, cfg.Notifier.RabbitExchange)
	case config.NotifierLog, "":
		return notify.NewLogPublisher(logger), nil
	default:
		return nil, fmt.Errorf("unknown notifier driver %q", cfg.Notifier.Driver)
	}
}

type coordinatorIn struct {
	dig.In

	Config     *config.Config
	Storage    *storage
	Directory  *partner.Directory
	ETA        *assignment.ETACalculator
	Locks      *zonelock.Locker
	Dispatcher *notify.Dispatcher
	Metrics    *metrics.Assignment
	Logger     logx.Logger
}

func newCoordinator(in coordinatorIn) *assignment.Coordinator {
	return assignment.NewCoordinator(assignment.Deps{
		Partners: in.Directory,
		Orders:   in.Storage.orders,
		Tx:       in.Storage.orders,
		Locks:    in.Locks,
		ETA:      in.ETA,
		Notifier: in.Dispatcher,
		Metrics:  in.Metrics,
		Logger:   in.Logger,
		Timeout:  in.Config.OperationTimeout,
	})
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(st *storage, cfg *config.Config) *partner.Directory {
			return partner.NewDirectory(st.partners, cfg.OperationTimeout)
		},
		func(cfg *config.Config) (*assignment.ETACalculator, error) {
			hours, err := cfg.Business.Hours()
			if err != nil {
				return nil, err
			}
			return assignment.NewETACalculator(hours), nil
		},
		zonelock.New,
		metrics.NewAssignment,
		newPublisher,
		func(cfg *config.Config, pub notify.Publisher, logger logx.Logger, m *metrics.Assignment) *notify.Dispatcher {
			return notify.NewDispatcher(pub, cfg.Notifier.QueueSize, logger, m)
		},
		newCoordinator,
		newTracing,
		func(c *assignment.Coordinator, tr *tracing) *observability.TracedAssignment {
			return observability.NewTracedAssignment(c, tr.provider)
		},
		func(svc *observability.TracedAssignment, logger logx.Logger) *payments.Processor {
			return payments.NewProcessor(svc, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewAssignmentUsecase,
		handlers.NewAssignmentHandler,
		router.New,
		serverProvider,
	)
}

func registerWorker(container *dig.Container) error {
	consumerProvider := func(cfg *config.Config, logger logx.Logger, p *payments.Processor) (*kafka.Consumer, error) {
		return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.PaymentsTopic, makePaymentsHandler(p))
	}
	return provideAll(container, consumerProvider)
}

// makePaymentsHandler marks malformed events as permanent so the consumer skips them.
func makePaymentsHandler(p *payments.Processor) kafka.HandleFunc {
	return func(ctx context.Context, e payments.Event) error {
		err := p.Handle(ctx, e)
		if errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}
