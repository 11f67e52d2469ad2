package handlers

import (
	"context"

	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/observability"
	"flora-partner-assignment/internal/service/assignment"
)

type assignmentUsecase interface {
	AutoAssignByID(ctx context.Context, orderID int64, opts assignment.AutoAssignOptions) (*domain.Order, bool, error)
	AssignSpecificByID(ctx context.Context, orderID int64, partnerID string) (*domain.Order, error)
	HandleDecline(ctx context.Context, orderID int64, partnerID string) (bool, error)
	EligiblePartners(ctx context.Context, zone string) ([]domain.Partner, error)
	NextPartner(ctx context.Context, zone, excludePartnerID string) (*domain.Partner, error)
}

// NewAssignmentUsecase wires the traced assignment service into an assignmentUsecase.
func NewAssignmentUsecase(svc *observability.TracedAssignment) assignmentUsecase {
	return svc
}
