package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"flora-partner-assignment/internal/domain"
)

// PartnerRepo is a read-only view over registered partners.
type PartnerRepo struct{ db *pgxpool.Pool }

// NewPartnerRepo creates a new PartnerRepo.
func NewPartnerRepo(db *pgxpool.Pool) *PartnerRepo { return &PartnerRepo{db: db} }

const partnerColumns = `id, name, COALESCE(service_zone, ''), registered_at`

// Get returns the partner by ID, or nil, nil if it does not exist.
func (r *PartnerRepo) Get(ctx context.Context, id string) (*domain.Partner, error) {
	var p domain.Partner
	err := r.db.QueryRow(ctx,
		`SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.ServiceZone, &p.RegisteredAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner %q: %w", id, err)
	}
	return &p, nil
}

// ListInZone returns the partners of a normalized zone ordered by registration time, then ID.
func (r *PartnerRepo) ListInZone(ctx context.Context, zone string) ([]domain.Partner, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+partnerColumns+`
        FROM partners
        WHERE lower(btrim(service_zone)) = $1
        ORDER BY registered_at, id
    `, zone)
	if err != nil {
		return nil, fmt.Errorf("list partners in zone %q: %w", zone, err)
	}
	defer rows.Close()

	out := make([]domain.Partner, 0)
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.ServiceZone, &p.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
