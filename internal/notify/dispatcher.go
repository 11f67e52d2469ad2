// Package notify delivers partner notifications off the assignment path.
//
// The Dispatcher accepts notifications without blocking and hands them to a
// Publisher from a single worker goroutine. A full queue or a failing publisher
// never reaches the assignment: the caller gets an error to log, nothing more.
package notify

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/logx"
)

// Errors returned by Dispatcher.Notify
var (
	ErrQueueFull = errors.New("notification queue is full")
	ErrClosed    = errors.New("notification dispatcher is closed")
)

// Publisher sends a notification to the partner channel.
type Publisher interface {
	Publish(ctx context.Context, n domain.PartnerNotification) error
	Close() error
}

// FailureObserver is told about every notification that was not delivered.
type FailureObserver interface {
	ObserveNotificationFailure()
}

// DropObserver is an optional FailureObserver extension told how many
// queued notifications were dropped on shutdown.
type DropObserver interface {
	ObserveNotificationsDropped(n int)
}

// Dispatcher queues notifications for asynchronous publishing.
type Dispatcher struct {
	pub      Publisher
	logger   logx.Logger
	failures FailureObserver

	mu     sync.RWMutex
	closed bool
	queue  chan domain.PartnerNotification

	started atomic.Bool
	done    chan struct{}
}

// NewDispatcher creates a Dispatcher with a queue of the given size.
// failures may be nil.
func NewDispatcher(pub Publisher, size int, logger logx.Logger, failures FailureObserver) *Dispatcher {
	if size <= 0 {
		size = 256
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Dispatcher{
		pub:      pub,
		logger:   logger,
		failures: failures,
		queue:    make(chan domain.PartnerNotification, size),
		done:     make(chan struct{}),
	}
}

// Notify enqueues n. It never blocks.
func (d *Dispatcher) Notify(_ context.Context, n domain.PartnerNotification) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}
	select {
	case d.queue <- n:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the worker that publishes queued notifications until the
// dispatcher is closed or ctx is done. Notifications still queued when ctx is
// done are dropped. Calling Start again has no effect.
func (d *Dispatcher) Start(ctx context.Context) {
	if d.started.CompareAndSwap(false, true) {
		go d.run(ctx)
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)

	for {
		select {
		case n, ok := <-d.queue:
			if !ok {
				return
			}
			d.publish(ctx, n)
		case <-ctx.Done():
			if left := len(d.queue); left > 0 {
				d.logger.Warn("notifications dropped on shutdown", logx.Int("count", left))
				if o, ok := d.failures.(DropObserver); ok {
					o.ObserveNotificationsDropped(left)
				}
			}
			return
		}
	}
}

// Close stops accepting notifications, waits for the worker to drain the queue
// and closes the publisher.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	if d.started.Load() {
		<-d.done
	}
	return d.pub.Close()
}

func (d *Dispatcher) publish(ctx context.Context, n domain.PartnerNotification) {
	if err := d.pub.Publish(ctx, n); err != nil {
		if d.failures != nil {
			d.failures.ObserveNotificationFailure()
		}
		d.logger.Error("partner notification failed",
			logx.String("event", "notification_failed"),
			logx.Int64("order_id", n.OrderID),
			logx.String("partner_id", n.PartnerID),
			logx.Err(err),
		)
	}
}
