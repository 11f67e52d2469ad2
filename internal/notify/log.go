package notify

import (
	"context"

	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/logx"
)

// LogPublisher writes notifications to the service log. It is the default when
// no broker is configured.
type LogPublisher struct {
	logger logx.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(logger logx.Logger) *LogPublisher {
	if logger == nil {
		logger = logx.Nop()
	}
	return &LogPublisher{logger: logger}
}

// Publish logs n.
func (p *LogPublisher) Publish(_ context.Context, n domain.PartnerNotification) error {
	p.logger.Info("partner notified",
		logx.String("event", "partner_notified"),
		logx.String("partner_id", n.PartnerID),
		logx.Int64("order_id", n.OrderID),
		logx.String("status", string(n.Status)),
	)
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error { return nil }
