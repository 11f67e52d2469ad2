package payments

import "time"

// Event is a single payment outcome for an order
type Event struct {
	OrderID    int64
	Status     string
	PartnerID  string
	OccurredAt time.Time
}
