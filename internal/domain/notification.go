package domain

import "time"

// PartnerNotification is sent to a partner when an order is assigned to them.
type PartnerNotification struct {
	PartnerID       string      `json:"partner_id"`
	OrderID         int64       `json:"order_id"`
	CustomerName    string      `json:"customer_name"`
	ShippingAddress string      `json:"shipping_address"`
	TotalAmount     int64       `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

// NewPartnerNotification builds the notification payload for an assigned order.
func NewPartnerNotification(o *Order, partnerID string) PartnerNotification {
	return PartnerNotification{
		PartnerID:       partnerID,
		OrderID:         o.ID,
		CustomerName:    o.CustomerName,
		ShippingAddress: o.ShippingAddress,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
	}
}
