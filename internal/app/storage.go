package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"flora-partner-assignment/internal/config"
	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/logx"
	"flora-partner-assignment/internal/repository"
	"flora-partner-assignment/internal/repository/memstore"
	"flora-partner-assignment/internal/service/assignment"
)

type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

type partnerStore interface {
	Get(ctx context.Context, id string) (*domain.Partner, error)
	ListInZone(ctx context.Context, zone string) ([]domain.Partner, error)
}

type orderStore interface {
	assignment.OrderReader
	assignment.TxRunner
}

// storage is the selected persistence backend.
type storage struct {
	partners partnerStore
	orders   orderStore
	pool     *pgxpool.Pool
}

// Close releases the connection pool, if any.
func (s *storage) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

func newMemoryStorage() *storage {
	st := memstore.New()
	return &storage{partners: st, orders: st}
}

func newPostgresStorage(ctx context.Context, pool *pgxpool.Pool) (*storage, error) {
	if err := repository.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &storage{
		partners: repository.NewPartnerRepo(pool),
		orders:   repository.NewOrderRepo(pool),
		pool:     pool,
	}, nil
}

func openStorage(ctx context.Context, cfg *config.Config, logger logx.Logger, connect dbConnectFunc) (*storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return newMemoryStorage(), nil
	case config.StoragePostgres:
		pool, err := connect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		return newPostgresStorage(ctx, pool)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
	}
}
