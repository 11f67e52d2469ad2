// Package memstore keeps partners and orders in process memory.
// It backs the STORAGE_DRIVER=memory mode and the assignment property tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"flora-partner-assignment/internal/apperr"
	"flora-partner-assignment/internal/domain"
	"flora-partner-assignment/internal/ports/assignmenttx"
)

// Store is an in-memory partners directory and orders store.
type Store struct {
	mu       sync.RWMutex
	txMu     sync.Mutex
	partners map[string]domain.Partner
	orders   map[int64]*domain.Order
	nextID   int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		partners: make(map[string]domain.Partner),
		orders:   make(map[int64]*domain.Order),
	}
}

// PutPartner inserts or replaces a partner.
func (s *Store) PutPartner(p domain.Partner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partners[p.ID] = p
}

// DeletePartner removes a partner; orders keep their reference.
func (s *Store) DeletePartner(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.partners, id)
}

// PutOrder stores a copy of o. A zero ID is replaced with the next free one, which is returned.
func (s *Store) PutOrder(o domain.Order) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		s.nextID++
		o.ID = s.nextID
	} else if o.ID > s.nextID {
		s.nextID = o.ID
	}
	s.orders[o.ID] = o.Clone()
	return o.ID
}

// Get returns the partner by ID, or nil, nil if it does not exist.
func (s *Store) Get(_ context.Context, id string) (*domain.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.partners[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// ListInZone returns the partners of a normalized zone ordered by registration time, then ID.
func (s *Store) ListInZone(_ context.Context, zone string) ([]domain.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Partner, 0)
	for _, p := range s.partners {
		if p.InZone(zone) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RegisteredAt.Equal(out[j].RegisteredAt) {
			return out[i].RegisteredAt.Before(out[j].RegisteredAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// GetByID returns a copy of the order, or nil, nil if it does not exist.
func (s *Store) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return o.Clone(), nil
}

// WithZoneTx runs fn with exclusive access to the store. Updates become visible only
// if fn returns nil.
func (s *Store) WithZoneTx(ctx context.Context, _ string, fn func(tx assignmenttx.Repository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	tx := &txRepo{s: s, staged: make(map[int64]domain.AssignmentUpdate)}
	if err := fn(tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range tx.staged {
		o, ok := s.orders[id]
		if !ok {
			return fmt.Errorf("commit order %d: %w", id, apperr.ErrNotFound)
		}
		u.Apply(o)
	}
	return nil
}

type txRepo struct {
	s      *Store
	staged map[int64]domain.AssignmentUpdate
}

func (t *txRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := t.s.GetByID(ctx, id)
	if o == nil || err != nil {
		return o, err
	}
	if u, ok := t.staged[id]; ok {
		u.Apply(o)
	}
	return o, nil
}

func (t *txRepo) LatestAssignedInZone(_ context.Context, zone string, partnerIDs []string) (*domain.Order, error) {
	wanted := make(map[string]struct{}, len(partnerIDs))
	for _, id := range partnerIDs {
		wanted[id] = struct{}{}
	}

	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	var latest *domain.Order
	for id, stored := range t.s.orders {
		o := stored.Clone()
		if u, ok := t.staged[id]; ok {
			u.Apply(o)
		}
		if o.AssignedPartnerID == nil || domain.NormalizeZone(o.ServiceZone) != domain.NormalizeZone(zone) {
			continue
		}
		if _, ok := wanted[*o.AssignedPartnerID]; !ok {
			continue
		}
		if latest == nil || o.CreatedAt.After(latest.CreatedAt) ||
			(o.CreatedAt.Equal(latest.CreatedAt) && o.ID > latest.ID) {
			latest = o
		}
	}
	return latest, nil
}

func (t *txRepo) UpdateAssignment(_ context.Context, u domain.AssignmentUpdate) error {
	t.s.mu.RLock()
	_, ok := t.s.orders[u.OrderID]
	t.s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("update order %d: %w", u.OrderID, apperr.ErrNotFound)
	}
	t.staged[u.OrderID] = u
	return nil
}
