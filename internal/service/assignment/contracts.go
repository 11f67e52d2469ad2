//go:generate mockgen -source=contracts.go -destination=assignment_mocks_test.go -package=assignment_test

package assignment

import (
	"context"

	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/ports/assignmenttx"
)

// PartnerDirectory lists the partners serving a zone.
type PartnerDirectory interface {
	ListPartnersInZone(ctx context.Context, zone string) ([]domain.Partner, error)
}

// Directory is the partner directory used by the Coordinator.
type Directory interface {
	PartnerDirectory
	GetPartner(ctx context.Context, id string) (*domain.Partner, error)
}

// OrderHistory answers "who received the last order in this zone".
type OrderHistory interface {
	LatestAssignedInZone(ctx context.Context, zone string, partnerIDs []string) (*domain.Order, error)
}

// OrderReader loads orders outside of an assignment transaction.
type OrderReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

// TxRunner runs fn in a transaction serialized per zone.
type TxRunner interface {
	WithZoneTx(ctx context.Context, zone string, fn func(tx assignmenttx.Repository) error) error
}

// ZoneLocker serializes assignments within one process.
type ZoneLocker interface {
	Lock(zone string) (unlock func())
}

// Notifier hands a notification over for asynchronous delivery.
type Notifier interface {
	Notify(ctx context.Context, n domain.PartnerNotification) error
}

// Metrics records assignment outcomes.
type Metrics interface {
	ObserveAttempt(mode Mode, outcome Outcome)
	ObserveNotificationFailure()
	ObserveZoneMismatch()
}
