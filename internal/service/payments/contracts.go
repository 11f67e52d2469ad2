//go:generate mockgen -source=contracts.go -destination=payments_mocks_test.go -package=payments_test

package payments

import (
	"context"

	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/service/assignment"
)

// AssignmentPort abstracts the subset of assignment operations
// needed by the payments Processor when handling payment events
type AssignmentPort interface {
	AutoAssignByID(ctx context.Context, orderID int64, opts assignment.AutoAssignOptions) (*domain.Order, bool, error)
	HandleDecline(ctx context.Context, orderID int64, partnerID string) (bool, error)
}
