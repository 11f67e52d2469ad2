package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"flora-partner-assignment/internal/service/assignment"
)

// NewAssignmentAttemptsTotal returns a Prometheus counter of assignment attempts by mode and outcome
func NewAssignmentAttemptsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_attempts_total",
		Help: "Total number of partner assignment attempts",
	}, []string{"mode", "outcome"})
}

// NewNotificationFailuresTotal returns a Prometheus counter of partner notifications that could not be sent
func NewNotificationFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notification_failures_total",
		Help: "Total number of partner notifications that failed to be sent",
	})
}

// NewZoneMismatchTotal returns a Prometheus counter of manual assignments outside of the order zone
func NewZoneMismatchTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_override_zone_mismatch_total",
		Help: "Total number of manual assignments to a partner from another zone",
	})
}

// NewNotificationsDroppedTotal returns a Prometheus counter of notifications dropped on shutdown
func NewNotificationsDroppedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifications_dropped_total",
		Help: "Total number of queued partner notifications dropped on shutdown",
	})
}

// Assignment records assignment outcomes. It implements assignment.Metrics.
type Assignment struct {
	attempts      *prometheus.CounterVec
	notifyFailure prometheus.Counter
	zoneMismatch  prometheus.Counter
	dropped       prometheus.Counter
}

// NewAssignment creates the assignment collectors and registers them on reg.
func NewAssignment(reg prometheus.Registerer) (*Assignment, error) {
	m := &Assignment{
		attempts:      NewAssignmentAttemptsTotal(),
		notifyFailure: NewNotificationFailuresTotal(),
		zoneMismatch:  NewZoneMismatchTotal(),
		dropped:       NewNotificationsDroppedTotal(),
	}
	for _, c := range []prometheus.Collector{m.attempts, m.notifyFailure, m.zoneMismatch, m.dropped} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveAttempt counts one assignment attempt.
func (m *Assignment) ObserveAttempt(mode assignment.Mode, outcome assignment.Outcome) {
	m.attempts.WithLabelValues(string(mode), string(outcome)).Inc()
}

// ObserveNotificationFailure counts one failed partner notification.
func (m *Assignment) ObserveNotificationFailure() { m.notifyFailure.Inc() }

// ObserveZoneMismatch counts one manual assignment outside of the order zone.
func (m *Assignment) ObserveZoneMismatch() { m.zoneMismatch.Inc() }

// ObserveNotificationsDropped counts notifications left in the queue on shutdown.
func (m *Assignment) ObserveNotificationsDropped(n int) { m.dropped.Add(float64(n)) }

var _ assignment.Metrics = (*Assignment)(nil)
