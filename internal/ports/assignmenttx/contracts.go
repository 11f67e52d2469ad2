package assignmenttx

import (
	"context"

	"flora-partner-assignment/internal/domain"
)

// Repository is the order store as seen from inside an assignment transaction.
type Repository interface {
	// GetByID returns nil, nil when the order does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// LatestAssignedInZone returns the most recently created order in zone whose assignee
	// is one of partnerIDs, or nil, nil when there is none.
	LatestAssignedInZone(ctx context.Context, zone string, partnerIDs []string) (*domain.Order, error)
	UpdateAssignment(ctx context.Context, u domain.AssignmentUpdate) error
}

// Runner runs fn in a transaction that is serialized with every other transaction on the same zone.
type Runner interface {
	WithZoneTx(ctx context.Context, zone string, fn func(tx Repository) error) error
}
