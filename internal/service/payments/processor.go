package payments

import (
	"context"
	"errors"
	"fmt"

	"flora-partner-assignment/internal/apperr"
	"flora-partner-assignment/internal/logx"
	"flora-partner-assignment/internal/service/assignment"
)

// Processor turns payment events into partner assignments
type Processor struct {
	assignment AssignmentPort
	logger     logx.Logger
	factory    *actionFactory
}

// NewProcessor creates a new payments.Processor
func NewProcessor(a AssignmentPort, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		assignment: a,
		logger:     logger,
	}
	p.factory = newActionFactory(p.onPaid, p.onDeclined)
	return p
}

// Handle processes a single payments.Event. Unknown statuses are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	if e.OrderID <= 0 {
		return fmt.Errorf("payment event order id %d: %w", e.OrderID, apperr.ErrInvalid)
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("payment status ignored",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onPaid(ctx context.Context, e Event) error {
	_, ok, err := p.assignment.AutoAssignByID(ctx, e.OrderID, assignment.AutoAssignOptions{})
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrConflict):
		p.skipped(e, err)
		return nil
	case err != nil:
		return err
	}
	if !ok {
		// заказ остается в Paid, его можно назначить вручную
		p.logger.Warn("paid order left unassigned",
			logx.String("event", "assignment_pending"),
			logx.Int64("order_id", e.OrderID),
		)
	}
	return nil
}

func (p *Processor) onDeclined(ctx context.Context, e Event) error {
	if e.PartnerID == "" {
		return fmt.Errorf("declined event for order %d without partner: %w", e.OrderID, apperr.ErrInvalid)
	}
	_, err := p.assignment.HandleDecline(ctx, e.OrderID, e.PartnerID)
	if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrConflict) {
		p.skipped(e, err)
		return nil
	}
	return err
}

func (p *Processor) skipped(e Event, err error) {
	p.logger.Info("payment event skipped",
		logx.Int64("order_id", e.OrderID),
		logx.String("status", e.Status),
		logx.Err(err),
	)
}
