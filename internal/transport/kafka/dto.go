package kafka

import (
	"strings"
	"time"

	"flora-partner-assignment/internal/service/payments"
)

// EventDTO is the wire form of a payments topic message
type EventDTO struct {
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	PartnerID  string    `json:"partner_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDomain converts EventDTO to payments.Event
func ToDomain(dto EventDTO) payments.Event {
	return payments.Event{
		OrderID:    dto.OrderID,
		Status:     strings.TrimSpace(dto.Status),
		PartnerID:  strings.TrimSpace(dto.PartnerID),
		OccurredAt: dto.OccurredAt,
	}
}
