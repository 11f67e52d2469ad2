package observability

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"flora-partner-assignment/internal/apperr"
	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/service/assignment"
)

const tracerName = "flora-partner-assignment/internal/observability"

// AssignmentService is the set of assignment operations exposed to transports.
type AssignmentService interface {
	AutoAssignByID(ctx context.Context, orderID int64, opts assignment.AutoAssignOptions) (*domain.Order, bool, error)
	AssignSpecificByID(ctx context.Context, orderID int64, partnerID string) (*domain.Order, error)
	HandleDecline(ctx context.Context, orderID int64, partnerID string) (bool, error)
	EligiblePartners(ctx context.Context, zone string) ([]domain.Partner, error)
	NextPartner(ctx context.Context, zone, excludePartnerID string) (*domain.Partner, error)
}

// TracedAssignment decorates an AssignmentService with spans.
type TracedAssignment struct {
	inner  AssignmentService
	tracer trace.Tracer
}

// NewTracedAssignment wraps inner. A nil provider falls back to a no-op tracer.
func NewTracedAssignment(inner AssignmentService, tp trace.TracerProvider) *TracedAssignment {
	if tp == nil {
		tp = nooptrace.NewTracerProvider()
	}
	return &TracedAssignment{inner: inner, tracer: tp.Tracer(tracerName)}
}

func (s *TracedAssignment) AutoAssignByID(
	ctx context.Context,
	orderID int64,
	opts assignment.AutoAssignOptions,
) (*domain.Order, bool, error) {
	ctx, span := s.tracer.Start(ctx, "Assignment.AutoAssign", trace.WithAttributes(
		attribute.Int64("order.id", orderID),
		attribute.String("partner.excluded", opts.ExcludePartnerID),
		attribute.Bool("eta.recompute", opts.RecomputeETA),
	))
	defer span.End()

	o, ok, err := s.inner.AutoAssignByID(ctx, orderID, opts)
	if err != nil {
		return nil, false, record(span, err)
	}
	span.SetAttributes(attribute.Bool("assignment.assigned", ok))
	if ok {
		span.SetAttributes(orderAttrs(o)...)
	}
	return o, ok, nil
}

func (s *TracedAssignment) AssignSpecificByID(ctx context.Context, orderID int64, partnerID string) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "Assignment.AssignSpecific", trace.WithAttributes(
		attribute.Int64("order.id", orderID),
		attribute.String("partner.id", partnerID),
	))
	defer span.End()

	o, err := s.inner.AssignSpecificByID(ctx, orderID, partnerID)
	if err != nil {
		return nil, record(span, err)
	}
	span.SetAttributes(orderAttrs(o)...)
	return o, nil
}

func (s *TracedAssignment) HandleDecline(ctx context.Context, orderID int64, partnerID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "Assignment.HandleDecline", trace.WithAttributes(
		attribute.Int64("order.id", orderID),
		attribute.String("partner.declined", partnerID),
	))
	defer span.End()

	ok, err := s.inner.HandleDecline(ctx, orderID, partnerID)
	if err != nil {
		return false, record(span, err)
	}
	span.SetAttributes(attribute.Bool("assignment.assigned", ok))
	return ok, nil
}

func (s *TracedAssignment) EligiblePartners(ctx context.Context, zone string) ([]domain.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "Assignment.EligiblePartners", trace.WithAttributes(
		attribute.String("zone", domain.NormalizeZone(zone)),
	))
	defer span.End()

	list, err := s.inner.EligiblePartners(ctx, zone)
	if err != nil {
		return nil, record(span, err)
	}
	span.SetAttributes(attribute.Int("partners.count", len(list)))
	return list, nil
}

func (s *TracedAssignment) NextPartner(ctx context.Context, zone, excludePartnerID string) (*domain.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "Assignment.NextPartner", trace.WithAttributes(
		attribute.String("zone", domain.NormalizeZone(zone)),
		attribute.String("partner.excluded", excludePartnerID),
	))
	defer span.End()

	p, err := s.inner.NextPartner(ctx, zone, excludePartnerID)
	if err != nil {
		return nil, record(span, err)
	}
	if p != nil {
		span.SetAttributes(attribute.String("partner.id", p.ID))
	}
	return p, nil
}

func orderAttrs(o *domain.Order) []attribute.KeyValue {
	if o == nil {
		return nil
	}
	attrs := []attribute.KeyValue{attribute.String("order.status", string(o.Status))}
	if o.AssignedPartnerID != nil {
		attrs = append(attrs, attribute.String("partner.id", *o.AssignedPartnerID))
	}
	return attrs
}

// record marks the span failed for unexpected errors only; client mistakes are
// recorded as events.
func record(span trace.Span, err error) error {
	span.RecordError(err)
	if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrConflict) {
		return err
	}
	span.SetStatus(codes.Error, err.Error())
	return err
}

var _ AssignmentService = (*TracedAssignment)(nil)
var _ AssignmentService = (*assignment.Coordinator)(nil)
