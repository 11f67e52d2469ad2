package notify_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/notify"
	testlog "flora-partner-assignment/internal/testutil"
)

type fakePublisher struct {
	mu     sync.Mutex
	got    []domain.PartnerNotification
	err    error
	block  chan struct{}
	closed atomic.Bool
}

func (p *fakePublisher) Publish(_ context.Context, n domain.PartnerNotification) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, n)
	return p.err
}

func (p *fakePublisher) Close() error {
	p.closed.Store(true)
	return nil
}

func (p *fakePublisher) Published() []domain.PartnerNotification {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.PartnerNotification, len(p.got))
	copy(out, p.got)
	return out
}

type failureCounter struct{ n atomic.Int32 }

func (c *failureCounter) ObserveNotificationFailure() { c.n.Add(1) }

func note(orderID int64, partnerID string) domain.PartnerNotification {
	return domain.PartnerNotification{OrderID: orderID, PartnerID: partnerID, Status: domain.OrderAssigned}
}

func TestDispatcher_PublishesInOrderAndDrainsOnClose(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	d := notify.NewDispatcher(pub, 8, nil, nil)

	d.Start(context.Background())

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, d.Notify(context.Background(), note(i, "p-1")))
	}
	require.NoError(t, d.Close())

	got := pub.Published()
	require.Len(t, got, 5)
	for i, n := range got {
		require.Equal(t, int64(i+1), n.OrderID)
	}
	require.True(t, pub.closed.Load())
}

func TestDispatcher_NotifyNeverBlocks(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	d := notify.NewDispatcher(pub, 2, nil, nil)

	// No worker: the queue fills up.
	require.NoError(t, d.Notify(context.Background(), note(1, "a")))
	require.NoError(t, d.Notify(context.Background(), note(2, "a")))

	done := make(chan error, 1)
	go func() { done <- d.Notify(context.Background(), note(3, "a")) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, notify.ErrQueueFull)
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}
}

func TestDispatcher_NotifyAfterClose(t *testing.T) {
	t.Parallel()

	d := notify.NewDispatcher(&fakePublisher{}, 1, nil, nil)
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	err := d.Notify(context.Background(), note(1, "a"))
	require.ErrorIs(t, err, notify.ErrClosed)
}

func TestDispatcher_PublishFailureIsLoggedAndCounted(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	failures := &failureCounter{}
	pub := &fakePublisher{err: errors.New("broker down")}
	d := notify.NewDispatcher(pub, 4, rec.Logger(), failures)

	d.Start(context.Background())
	require.NoError(t, d.Notify(context.Background(), note(7, "p-9")))
	require.NoError(t, d.Close())

	require.Equal(t, int32(1), failures.n.Load())
	entry, found := rec.Find("error", "partner notification failed")
	require.True(t, found)
	v, _ := entry.Field("order_id")
	require.Equal(t, int64(7), v)
}

func TestDispatcher_WorkerStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	pub := &fakePublisher{block: make(chan struct{})}
	d := notify.NewDispatcher(pub, 4, rec.Logger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	d.Start(ctx)

	require.NoError(t, d.Notify(context.Background(), note(1, "a")))
	require.NoError(t, d.Notify(context.Background(), note(2, "a")))

	cancel()
	close(pub.block)

	closed := make(chan error, 1)
	go func() { closed <- d.Close() }()
	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestLogPublisher_Publish(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	p := notify.NewLogPublisher(rec.Logger())

	require.NoError(t, p.Publish(context.Background(), note(3, "p-2")))
	require.NoError(t, p.Close())

	entry, found := rec.Find("info", "partner notified")
	require.True(t, found)
	v, _ := entry.Field("partner_id")
	require.Equal(t, "p-2", v)
}
