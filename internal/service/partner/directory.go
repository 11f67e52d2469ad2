package partner

import (
	"context"
	"strings"
	"time"

	"flora-partner-assignment/internal/apperr"
	"flora-partner-assignment/internal/domain"
)

type repository interface {
	Get(ctx context.Context, id string) (*domain.Partner, error)
	ListInZone(ctx context.Context, zone string) ([]domain.Partner, error)
}

// Directory is a read-only view over registered delivery partners.
type Directory struct {
	repo             repository
	operationTimeout time.Duration
}

// NewDirectory creates a Directory backed by a partner repository.
func NewDirectory(r repository, timeout time.Duration) *Directory {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Directory{repo: r, operationTimeout: timeout}
}

// ListPartnersInZone returns the partners serving zone. A blank zone yields an empty list
// without touching storage.
func (d *Directory) ListPartnersInZone(ctx context.Context, zone string) ([]domain.Partner, error) {
	zone = domain.NormalizeZone(zone)
	if zone == "" {
		return []domain.Partner{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.operationTimeout)
	defer cancel()

	list, err := d.repo.ListInZone(ctx, zone)
	if err != nil {
		return nil, err
	}
	out := list[:0]
	for _, p := range list {
		if p.InZone(zone) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetPartner returns the partner by ID.
func (d *Directory) GetPartner(ctx context.Context, id string) (*domain.Partner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, d.operationTimeout)
	defer cancel()

	p, err := d.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}
