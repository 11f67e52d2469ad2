package assignment

import (
	"fmt"
	"time"
)

// BusinessHours describes when the shop dispatches deliveries.
// Open and Close are offsets from local midnight.
type BusinessHours struct {
	Location         *time.Location
	Open             time.Duration
	Close            time.Duration
	DeliveryDuration time.Duration
}

// DefaultBusinessHours returns 09:00 to 21:00 with a five hour delivery in loc.
func DefaultBusinessHours(loc *time.Location) BusinessHours {
	return BusinessHours{
		Location:         loc,
		Open:             9 * time.Hour,
		Close:            21 * time.Hour,
		DeliveryDuration: 5 * time.Hour,
	}
}

// Validate checks that the hours describe a non-empty working day.
func (h BusinessHours) Validate() error {
	switch {
	case h.Location == nil:
		return fmt.Errorf("business hours: location is required")
	case h.Open < 0 || h.Close > 24*time.Hour || h.Open >= h.Close:
		return fmt.Errorf("business hours: open %v must be before close %v within a day", h.Open, h.Close)
	case h.DeliveryDuration <= 0:
		return fmt.Errorf("business hours: delivery duration must be positive, got %v", h.DeliveryDuration)
	}
	return nil
}

// ETACalculator estimates delivery time from business hours.
type ETACalculator struct {
	hours BusinessHours
	now   func() time.Time
}

// NewETACalculator creates an ETACalculator using the wall clock.
func NewETACalculator(h BusinessHours) *ETACalculator {
	if h.Location == nil {
		h.Location = time.UTC
	}
	return &ETACalculator{hours: h, now: time.Now}
}

// WithClock returns a copy of the calculator that reads the current time from now.
func (c *ETACalculator) WithClock(now func() time.Time) *ETACalculator {
	cp := *c
	cp.now = now
	return &cp
}

// Now returns the current time in the business location.
func (c *ETACalculator) Now() time.Time {
	return c.now().In(c.hours.Location)
}

// EstimateDelivery returns when an order received at now will be delivered.
// Orders before opening wait for opening, orders after closing wait for the next day,
// and an estimate past closing time moves to the next day's first delivery slot.
func (c *ETACalculator) EstimateDelivery(now time.Time) time.Time {
	local := now.In(c.hours.Location)
	openToday := c.at(local, c.hours.Open)
	closeToday := c.at(local, c.hours.Close)

	var start time.Time
	switch {
	case local.Before(openToday):
		start = openToday
	case local.After(closeToday):
		start = c.at(local.AddDate(0, 0, 1), c.hours.Open)
	default:
		start = local
	}

	eta := start.Add(c.hours.DeliveryDuration)
	if eta.After(c.at(start, c.hours.Close)) {
		eta = c.at(start.AddDate(0, 0, 1), c.hours.Open).Add(c.hours.DeliveryDuration)
	}
	return eta
}

func (c *ETACalculator) at(day time.Time, offset time.Duration) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, int(offset/time.Hour), int(offset%time.Hour/time.Minute), 0, 0, c.hours.Location)
}
