package handlers

import (
	"strings"

	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/service/assignment"
)

func (r autoAssignRequest) toOptions() assignment.AutoAssignOptions {
	return assignment.AutoAssignOptions{
		ExcludePartnerID: strings.TrimSpace(r.ExcludePartnerID),
		RecomputeETA:     r.RecomputeETA,
	}
}

func partnerToResponse(p domain.Partner) partnerDTO {
	return partnerDTO{
		ID:           p.ID,
		Name:         p.Name,
		ServiceZone:  p.ServiceZone,
		RegisteredAt: p.RegisteredAt,
	}
}

func partnersToResponse(list []domain.Partner) []partnerDTO {
	out := make([]partnerDTO, 0, len(list))
	for _, p := range list {
		out = append(out, partnerToResponse(p))
	}
	return out
}

func orderToResponse(o *domain.Order) *orderDTO {
	if o == nil {
		return nil
	}
	return &orderDTO{
		ID:                    o.ID,
		ServiceZone:           o.ServiceZone,
		AssignedPartnerID:     o.AssignedPartnerID,
		Status:                o.Status,
		CreatedAt:             o.CreatedAt,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
	}
}
