package handlers

import (
	"time"

	"flora-partner-assignment/internal/domain"
)

type partnerDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ServiceZone  string    `json:"service_zone"`
	RegisteredAt time.Time `json:"registered_at"`
}

type orderDTO struct {
	ID                    int64              `json:"id"`
	ServiceZone           string             `json:"service_zone"`
	AssignedPartnerID     *string            `json:"assigned_partner_id"`
	Status                domain.OrderStatus `json:"status"`
	CreatedAt             time.Time          `json:"created_at"`
	EstimatedDeliveryTime time.Time          `json:"estimated_delivery_time"`
}

type autoAssignRequest struct {
	ExcludePartnerID string `json:"exclude_partner_id,omitempty"`
	RecomputeETA     bool   `json:"recompute_eta,omitempty"`
}

type assignRequest struct {
	PartnerID string `json:"partner_id"`
}

type declineRequest struct {
	PartnerID string `json:"partner_id"`
}

type assignmentResponse struct {
	Assigned bool      `json:"assigned"`
	Order    *orderDTO `json:"order,omitempty"`
}

type nextPartnerResponse struct {
	Partner *partnerDTO `json:"partner"`
}
