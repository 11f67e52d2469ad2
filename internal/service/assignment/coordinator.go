package assignment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flora-partner-assignment/internal/apperr"
	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/logx"
	"flora-partner-assignment/internal/ports/assignmenttx"
)

// Mode tells how an assignment was requested.
type Mode string

// Outcome is the result of an assignment attempt.
type Outcome string

// List of assignment modes
const (
	ModeAuto    Mode = "auto"
	ModeManual  Mode = "manual"
	ModeDecline Mode = "decline"
)

// List of assignment outcomes
const (
	OutcomeAssigned  Outcome = "assigned"
	OutcomeNoPartner Outcome = "no_partner"
	OutcomeNoZone    Outcome = "no_zone"
	OutcomeReleased  Outcome = "released"
	OutcomeError     Outcome = "error"
)

// AutoAssignOptions tunes TryAutoAssign.
type AutoAssignOptions struct {
	// ExcludePartnerID is skipped by the rotation, e.g. a partner that declined the order.
	ExcludePartnerID string
	// RecomputeETA replaces the ETA set at checkout with a fresh estimate.
	RecomputeETA bool
}

// Deps holds the Coordinator collaborators.
type Deps struct {
	Partners Directory
	Orders   OrderReader
	Tx       TxRunner
	Locks    ZoneLocker
	ETA      *ETACalculator
	Notifier Notifier
	Metrics  Metrics
	Logger   logx.Logger
	Timeout  time.Duration
}

// Coordinator assigns partners to orders and persists the result.
type Coordinator struct {
	partners         Directory
	orders           OrderReader
	tx               TxRunner
	locks            ZoneLocker
	eta              *ETACalculator
	notifier         Notifier
	metrics          Metrics
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewCoordinator creates a Coordinator. Missing optional collaborators are replaced with no-ops.
func NewCoordinator(d Deps) *Coordinator {
	if d.Timeout <= 0 {
		d.Timeout = 3 * time.Second
	}
	if d.Locks == nil {
		d.Locks = nopLocker{}
	}
	if d.ETA == nil {
		d.ETA = NewETACalculator(DefaultBusinessHours(time.UTC))
	}
	if d.Notifier == nil {
		d.Notifier = nopNotifier{}
	}
	if d.Metrics == nil {
		d.Metrics = nopMetrics{}
	}
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	return &Coordinator{
		partners:         d.Partners,
		orders:           d.Orders,
		tx:               d.Tx,
		locks:            d.Locks,
		eta:              d.ETA,
		notifier:         d.Notifier,
		metrics:          d.Metrics,
		logger:           d.Logger,
		operationTimeout: d.Timeout,
	}
}

func (c *Coordinator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.operationTimeout)
}

// TryAutoAssign gives a Paid order to the next partner of its zone. It returns false without
// touching the order when the order has no zone or nobody is eligible. An order that is not
// Paid, here or in storage, gets apperr.ErrConflict. On success order is updated in place;
// on error it is left as it was.
func (c *Coordinator) TryAutoAssign(ctx context.Context, order *domain.Order, opts AutoAssignOptions) (bool, error) {
	if order == nil {
		return false, apperr.ErrInvalid
	}
	if order.Status != domain.OrderPaid {
		return false, notPaid(order)
	}
	zone := domain.NormalizeZone(order.ServiceZone)
	if zone == "" {
		c.metrics.ObserveAttempt(ModeAuto, OutcomeNoZone)
		return false, nil
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	unlock := c.locks.Lock(zone)
	defer unlock()

	var updated *domain.Order
	var partner *domain.Partner
	err := c.tx.WithZoneTx(ctx, zone, func(tx assignmenttx.Repository) error {
		// the stored status wins: a redelivered event may race an earlier one
		current, err := tx.GetByID(ctx, order.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return apperr.ErrNotFound
		}
		if current.Status != domain.OrderPaid {
			return notPaid(current)
		}
		updated, partner, err = c.assignNext(ctx, tx, current, opts)
		return err
	})
	if err != nil {
		c.metrics.ObserveAttempt(ModeAuto, OutcomeError)
		return false, fmt.Errorf("auto-assign order %d: %w", order.ID, err)
	}
	if updated == nil {
		c.metrics.ObserveAttempt(ModeAuto, OutcomeNoPartner)
		c.logger.Info("no partner available",
			logx.String("event", "assignment_no_partner"),
			logx.Int64("order_id", order.ID),
			logx.String("zone", zone),
			logx.String("excluded_partner_id", opts.ExcludePartnerID),
		)
		return false, nil
	}

	*order = *updated
	c.metrics.ObserveAttempt(ModeAuto, OutcomeAssigned)
	c.logAssigned(ModeAuto, order, partner.ID)
	c.notify(ctx, order)
	return true, nil
}

// AssignSpecific gives order to partner regardless of rotation and zone, and recomputes the ETA.
// A partner from another zone is accepted and reported.
func (c *Coordinator) AssignSpecific(ctx context.Context, order *domain.Order, partner domain.Partner) error {
	if order == nil || strings.TrimSpace(partner.ID) == "" {
		return apperr.ErrInvalid
	}
	if order.Status.Final() {
		return fmt.Errorf("order %d is %s: %w", order.ID, order.Status, apperr.ErrConflict)
	}
	zone := domain.NormalizeZone(order.ServiceZone)

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	unlock := c.locks.Lock(zone)
	defer unlock()

	partnerID := partner.ID
	u := domain.AssignmentUpdate{
		OrderID:               order.ID,
		PartnerID:             &partnerID,
		Status:                domain.OrderAssigned,
		EstimatedDeliveryTime: c.eta.EstimateDelivery(c.eta.Now()),
	}
	err := c.tx.WithZoneTx(ctx, zone, func(tx assignmenttx.Repository) error {
		return tx.UpdateAssignment(ctx, u)
	})
	if err != nil {
		c.metrics.ObserveAttempt(ModeManual, OutcomeError)
		return fmt.Errorf("assign order %d to partner %q: %w", order.ID, partner.ID, err)
	}

	if !partner.InZone(order.ServiceZone) {
		c.metrics.ObserveZoneMismatch()
		c.logger.Warn("partner assigned outside of order zone",
			logx.String("event", "partner_override_zone_mismatch"),
			logx.Int64("order_id", order.ID),
			logx.String("partner_id", partner.ID),
			logx.String("order_zone", order.ServiceZone),
			logx.String("partner_zone", partner.ServiceZone),
		)
	}

	u.Apply(order)
	c.metrics.ObserveAttempt(ModeManual, OutcomeAssigned)
	c.logAssigned(ModeManual, order, partner.ID)
	c.notify(ctx, order)
	return nil
}

// HandleDecline passes an order declined by its partner to the next partner of the zone,
// with a fresh ETA. When nobody else is eligible the order goes back to Paid without a
// partner and false is returned. Only an Assigned order can be declined.
func (c *Coordinator) HandleDecline(ctx context.Context, orderID int64, partnerID string) (bool, error) {
	partnerID = strings.TrimSpace(partnerID)
	if orderID <= 0 || partnerID == "" {
		return false, apperr.ErrInvalid
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	current, err := c.loadOrder(ctx, orderID)
	if err != nil {
		return false, err
	}
	zone := domain.NormalizeZone(current.ServiceZone)

	unlock := c.locks.Lock(zone)
	defer unlock()

	var (
		updated *domain.Order
		next    *domain.Partner
	)
	err = c.tx.WithZoneTx(ctx, zone, func(tx assignmenttx.Repository) error {
		o, err := tx.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return apperr.ErrNotFound
		}
		if !o.AssignedTo(partnerID) {
			return fmt.Errorf("order %d is not assigned to partner %q: %w", orderID, partnerID, apperr.ErrConflict)
		}
		if o.Status != domain.OrderAssigned {
			return fmt.Errorf("order %d is %s: %w", orderID, o.Status, apperr.ErrConflict)
		}

		updated, next, err = c.assignNext(ctx, tx, o, AutoAssignOptions{ExcludePartnerID: partnerID, RecomputeETA: true})
		if err != nil || updated != nil {
			return err
		}

		release := domain.AssignmentUpdate{
			OrderID:               o.ID,
			Status:                domain.OrderPaid,
			EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		}
		if err := tx.UpdateAssignment(ctx, release); err != nil {
			return err
		}
		updated = o.Clone()
		release.Apply(updated)
		return nil
	})
	if err != nil {
		c.metrics.ObserveAttempt(ModeDecline, OutcomeError)
		return false, fmt.Errorf("reassign declined order %d: %w", orderID, err)
	}

	if next == nil {
		c.metrics.ObserveAttempt(ModeDecline, OutcomeReleased)
		c.logger.Info("declined order released",
			logx.String("event", "assignment_released"),
			logx.Int64("order_id", orderID),
			logx.String("declined_by", partnerID),
		)
		return false, nil
	}

	c.metrics.ObserveAttempt(ModeDecline, OutcomeAssigned)
	c.logAssigned(ModeDecline, updated, next.ID)
	c.notify(ctx, updated)
	return true, nil
}

// AutoAssignByID loads the order and runs TryAutoAssign on it.
func (c *Coordinator) AutoAssignByID(ctx context.Context, orderID int64, opts AutoAssignOptions) (*domain.Order, bool, error) {
	if orderID <= 0 {
		return nil, false, apperr.ErrInvalid
	}
	o, err := c.loadOrder(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	opts.ExcludePartnerID = strings.TrimSpace(opts.ExcludePartnerID)
	ok, err := c.TryAutoAssign(ctx, o, opts)
	if err != nil {
		return nil, false, err
	}
	return o, ok, nil
}

// AssignSpecificByID loads the order and the partner and runs AssignSpecific.
func (c *Coordinator) AssignSpecificByID(ctx context.Context, orderID int64, partnerID string) (*domain.Order, error) {
	if orderID <= 0 {
		return nil, apperr.ErrInvalid
	}
	p, err := c.partners.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	o, err := c.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := c.AssignSpecific(ctx, o, *p); err != nil {
		return nil, err
	}
	return o, nil
}

// EligiblePartners returns the partners of zone in rotation order.
func (c *Coordinator) EligiblePartners(ctx context.Context, zone string) ([]domain.Partner, error) {
	list, err := c.partners.ListPartnersInZone(ctx, zone)
	if err != nil {
		return nil, err
	}
	return Ring(list, zone, ""), nil
}

// NextPartner previews the partner the rotation would pick in zone. It writes nothing.
func (c *Coordinator) NextPartner(ctx context.Context, zone, excludePartnerID string) (*domain.Partner, error) {
	zone = domain.NormalizeZone(zone)
	if zone == "" {
		return nil, nil
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var p *domain.Partner
	err := c.tx.WithZoneTx(ctx, zone, func(tx assignmenttx.Repository) error {
		var err error
		p, err = NewEngine(c.partners, tx).FindBestPartner(ctx, zone, strings.TrimSpace(excludePartnerID))
		return err
	})
	return p, err
}

func (c *Coordinator) assignNext(
	ctx context.Context,
	tx assignmenttx.Repository,
	order *domain.Order,
	opts AutoAssignOptions,
) (*domain.Order, *domain.Partner, error) {
	partner, err := NewEngine(c.partners, tx).FindBestPartner(ctx, order.ServiceZone, opts.ExcludePartnerID)
	if err != nil || partner == nil {
		return nil, nil, err
	}

	partnerID := partner.ID
	u := domain.AssignmentUpdate{
		OrderID:               order.ID,
		PartnerID:             &partnerID,
		Status:                domain.OrderAssigned,
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
	}
	if opts.RecomputeETA {
		u.EstimatedDeliveryTime = c.eta.EstimateDelivery(c.eta.Now())
	}
	if err := tx.UpdateAssignment(ctx, u); err != nil {
		return nil, nil, err
	}

	updated := order.Clone()
	u.Apply(updated)
	return updated, partner, nil
}

func notPaid(o *domain.Order) error {
	return fmt.Errorf("order %d is %s, not %s: %w", o.ID, o.Status, domain.OrderPaid, apperr.ErrConflict)
}

func (c *Coordinator) loadOrder(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := c.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

func (c *Coordinator) notify(ctx context.Context, order *domain.Order) {
	if order.AssignedPartnerID == nil {
		return
	}
	n := domain.NewPartnerNotification(order, *order.AssignedPartnerID)
	if err := c.notifier.Notify(ctx, n); err != nil {
		c.metrics.ObserveNotificationFailure()
		c.logger.Error("partner notification failed",
			logx.String("event", "notification_failed"),
			logx.Int64("order_id", order.ID),
			logx.String("partner_id", n.PartnerID),
			logx.Err(err),
		)
	}
}

func (c *Coordinator) logAssigned(mode Mode, order *domain.Order, partnerID string) {
	c.logger.Info("partner assigned",
		logx.String("event", "partner_assigned"),
		logx.String("mode", string(mode)),
		logx.Int64("order_id", order.ID),
		logx.String("partner_id", partnerID),
		logx.String("zone", domain.NormalizeZone(order.ServiceZone)),
		logx.Time("eta", order.EstimatedDeliveryTime),
	)
}

type nopLocker struct{}

func (nopLocker) Lock(string) func() { return func() {} }

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, domain.PartnerNotification) error { return nil }

type nopMetrics struct{}

func (nopMetrics) ObserveAttempt(Mode, Outcome) {}
func (nopMetrics) ObserveNotificationFailure()  {}
func (nopMetrics) ObserveZoneMismatch()         {}
