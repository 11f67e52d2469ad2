package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"flora-partner-assignment/internal/service/assignment"
)

// List of storage drivers
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// List of notifier drivers
const (
	NotifierLog      = "log"
	NotifierKafka    = "kafka"
	NotifierRabbitMQ = "rabbitmq"
)

// Config stores service settings.
type Config struct {
	Port             int
	LogLevel         string
	Storage          string
	OperationTimeout time.Duration
	TracingExporter  string

	DB       DB
	Business Business
	Kafka    Kafka
	Notifier Notifier
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns the connection string for pgx.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Business stores the shop working hours used for delivery estimates.
type Business struct {
	Timezone         string
	OpenHour         int
	CloseHour        int
	DeliveryDuration time.Duration
}

// Hours converts the settings into assignment.BusinessHours.
func (b Business) Hours() (assignment.BusinessHours, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return assignment.BusinessHours{}, fmt.Errorf("timezone %q: %w", b.Timezone, err)
	}
	h := assignment.BusinessHours{
		Location:         loc,
		Open:             time.Duration(b.OpenHour) * time.Hour,
		Close:            time.Duration(b.CloseHour) * time.Hour,
		DeliveryDuration: b.DeliveryDuration,
	}
	return h, h.Validate()
}

// Kafka stores broker settings for the payments consumer and the notifier.
type Kafka struct {
	Brokers            []string
	PaymentsTopic      string
	GroupID            string
	NotificationsTopic string
}

// Notifier stores partner notification settings.
type Notifier struct {
	Driver         string
	QueueSize      int
	RabbitURL      string
	RabbitExchange string
}

// Load reads configuration in order: .env (if present) → environment → flags from os.Args.
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs is Load with explicit command line arguments.
func LoadArgs(args []string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet("partner-assignment", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage driver: postgres or memory")
	fs.StringVar(&cfg.Business.Timezone, "timezone", cfg.Business.Timezone, "business hours timezone")
	fs.StringVar(&cfg.Notifier.Driver, "notifier", cfg.Notifier.Driver, "notifier driver: log, kafka or rabbitmq")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Port:             defaultPort,
		LogLevel:         envString("LOG_LEVEL", "info"),
		Storage:          envString("STORAGE_DRIVER", StoragePostgres),
		OperationTimeout: defaultOperationTimeout,
		TracingExporter:  envString("TRACING_EXPORTER", "none"),
		DB: DB{
			Host: envString("POSTGRES_HOST", defaultDB.Host),
			Port: envString("POSTGRES_PORT", defaultDB.Port),
			User: envString("POSTGRES_USER", defaultDB.User),
			Pass: envString("POSTGRES_PASSWORD", defaultDB.Pass),
			Name: envString("POSTGRES_DB", defaultDB.Name),
		},
		Business: Business{
			Timezone: envString("BUSINESS_TIMEZONE", defaultBusiness.Timezone),
		},
		Kafka: Kafka{
			Brokers:            envList("KAFKA_BROKERS"),
			PaymentsTopic:      envString("KAFKA_PAYMENTS_TOPIC", defaultKafka.PaymentsTopic),
			GroupID:            envString("KAFKA_GROUP_ID", defaultKafka.GroupID),
			NotificationsTopic: envString("KAFKA_NOTIFICATIONS_TOPIC", defaultKafka.NotificationsTopic),
		},
		Notifier: Notifier{
			Driver:         envString("NOTIFIER_DRIVER", defaultNotifier.Driver),
			RabbitURL:      envString("RABBITMQ_URL", ""),
			RabbitExchange: envString("RABBITMQ_EXCHANGE", defaultNotifier.RabbitExchange),
		},
	}

	var err error
	if cfg.Port, err = envInt("PORT", defaultPort); err != nil {
		return nil, err
	}
	if cfg.Business.OpenHour, err = envInt("BUSINESS_OPEN_HOUR", defaultBusiness.OpenHour); err != nil {
		return nil, err
	}
	if cfg.Business.CloseHour, err = envInt("BUSINESS_CLOSE_HOUR", defaultBusiness.CloseHour); err != nil {
		return nil, err
	}
	if cfg.Business.DeliveryDuration, err = envDuration("DELIVERY_DURATION", defaultBusiness.DeliveryDuration); err != nil {
		return nil, err
	}
	if cfg.Notifier.QueueSize, err = envInt("NOTIFIER_QUEUE_SIZE", defaultNotifier.QueueSize); err != nil {
		return nil, err
	}
	if cfg.OperationTimeout, err = envDuration("OPERATION_TIMEOUT", defaultOperationTimeout); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.Storage {
	case StoragePostgres:
		if p, err := strconv.Atoi(c.DB.Port); err != nil || p <= 0 || p > 65535 {
			return fmt.Errorf("invalid POSTGRES_PORT: %q", c.DB.Port)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage)
	}
	if _, err := c.Business.Hours(); err != nil {
		return fmt.Errorf("business hours: %w", err)
	}
	switch c.Notifier.Driver {
	case NotifierLog:
	case NotifierKafka:
		if len(c.Kafka.Brokers) == 0 || c.Kafka.NotificationsTopic == "" {
			return fmt.Errorf("kafka notifier requires KAFKA_BROKERS and KAFKA_NOTIFICATIONS_TOPIC")
		}
	case NotifierRabbitMQ:
		if c.Notifier.RabbitURL == "" {
			return fmt.Errorf("rabbitmq notifier requires RABBITMQ_URL")
		}
	default:
		return fmt.Errorf("unknown notifier driver %q", c.Notifier.Driver)
	}
	if c.Notifier.QueueSize <= 0 {
		return fmt.Errorf("invalid NOTIFIER_QUEUE_SIZE: %d", c.Notifier.QueueSize)
	}
	switch c.TracingExporter {
	case "", "none", "stdout":
	default:
		return fmt.Errorf("unknown tracing exporter %q", c.TracingExporter)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("invalid OPERATION_TIMEOUT: %v", c.OperationTimeout)
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
