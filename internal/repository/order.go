package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flora-partner-assignment/internal/apperr"
	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/ports/assignmenttx"
)

// OrderRepo represents the orders store.
type OrderRepo struct {
	db *pgxpool.Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

// GetByID returns the order by ID outside of any transaction.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return getOrder(ctx, r.db, id)
}

// WithZoneTx opens a transaction, takes a transaction-scoped advisory lock on the zone
// and executes fn within it.
func (r *OrderRepo) WithZoneTx(ctx context.Context, zone string, fn func(tx assignmenttx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// откатываем в случае паники
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, domain.NormalizeZone(zone)); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("lock zone %q: %w", zone, err)
	}

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// TxRepo is the order store bound to an open transaction.
type TxRepo struct {
	tx pgx.Tx
}

var _ assignmenttx.Repository = (*TxRepo)(nil)

// GetByID returns the order by ID within the transaction.
func (r *TxRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return getOrder(ctx, r.tx, id)
}

// LatestAssignedInZone returns the newest order in zone assigned to one of partnerIDs.
func (r *TxRepo) LatestAssignedInZone(ctx context.Context, zone string, partnerIDs []string) (*domain.Order, error) {
	if len(partnerIDs) == 0 {
		return nil, nil
	}
	row := r.tx.QueryRow(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE lower(btrim(service_zone)) = $1
          AND assigned_partner_id = ANY($2)
        ORDER BY created_at DESC, id DESC
        LIMIT 1
    `, domain.NormalizeZone(zone), partnerIDs)

	o, err := scanOrder(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest assigned order in zone %q: %w", zone, err)
	}
	return o, nil
}

// UpdateAssignment writes the assignee, status and ETA of an order.
func (r *TxRepo) UpdateAssignment(ctx context.Context, u domain.AssignmentUpdate) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET assigned_partner_id     = $2,
            status                  = $3,
            estimated_delivery_time = $4,
            updated_at              = now()
        WHERE id = $1
    `, u.OrderID, u.PartnerID, string(u.Status), nullTime(u.EstimatedDeliveryTime))
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("update order %d: partner: %w", u.OrderID, apperr.ErrNotFound)
		}
		return fmt.Errorf("update order %d: %w", u.OrderID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("update order %d: %w", u.OrderID, apperr.ErrNotFound)
	}
	return nil
}

const orderColumns = `id, service_zone, assigned_partner_id, status, created_at, estimated_delivery_time,
        customer_name, shipping_address, total_amount`

func getOrder(ctx context.Context, q querier, id int64) (*domain.Order, error) {
	row := q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o      domain.Order
		status string
		eta    *time.Time
	)
	if err := row.Scan(&o.ID, &o.ServiceZone, &o.AssignedPartnerID, &status, &o.CreatedAt, &eta,
		&o.CustomerName, &o.ShippingAddress, &o.TotalAmount); err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	if eta != nil {
		o.EstimatedDeliveryTime = *eta
	}
	return &o, nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
