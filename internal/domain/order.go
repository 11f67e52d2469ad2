package domain

import "time"

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

// List of possible order statuses
const (
	OrderPending        OrderStatus = "Pending"
	OrderPendingPayment OrderStatus = "PendingPayment"
	OrderPaid           OrderStatus = "Paid"
	OrderAssigned       OrderStatus = "Assigned"
	OrderDelivering     OrderStatus = "Delivering"
	OrderCompleted      OrderStatus = "Completed"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
	OrderDeclined       OrderStatus = "Declined"
)

var allowedOrderStatuses = [...]OrderStatus{
	OrderPending, OrderPendingPayment, OrderPaid, OrderAssigned, OrderDelivering,
	OrderCompleted, OrderDelivered, OrderCancelled, OrderDeclined,
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Final reports whether the order can no longer be (re)assigned.
func (s OrderStatus) Final() bool {
	switch s {
	case OrderCompleted, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order is a purchase that needs delivery.
// TotalAmount is kept in minor currency units.
type Order struct {
	ID                    int64
	ServiceZone           string
	AssignedPartnerID     *string
	Status                OrderStatus
	CreatedAt             time.Time
	EstimatedDeliveryTime time.Time
	CustomerName          string
	ShippingAddress       string
	TotalAmount           int64
}

// AssignedTo reports whether the order is currently assigned to partnerID.
func (o *Order) AssignedTo(partnerID string) bool {
	return o.AssignedPartnerID != nil && *o.AssignedPartnerID == partnerID
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	cp := *o
	if o.AssignedPartnerID != nil {
		id := *o.AssignedPartnerID
		cp.AssignedPartnerID = &id
	}
	return &cp
}

// AssignmentUpdate carries the only fields the assignment subsystem may change.
type AssignmentUpdate struct {
	OrderID               int64
	PartnerID             *string
	Status                OrderStatus
	EstimatedDeliveryTime time.Time
}

// Apply copies the update onto the order.
func (u AssignmentUpdate) Apply(o *Order) {
	o.AssignedPartnerID = u.PartnerID
	o.Status = u.Status
	o.EstimatedDeliveryTime = u.EstimatedDeliveryTime
}
