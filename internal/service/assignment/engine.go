package assignment

import (
	"context"
	"sort"

	"flora-partner-assignment/internal/domain"
)

// Engine picks the next partner of a zone in round-robin order.
//
// The rotation is not stored anywhere: the ring is the zone's partners sorted by
// registration time and ID, and the turn is recovered from the newest order in the zone
// assigned to a partner still on the ring. Partners joining or leaving, cancelled orders
// and manual overrides therefore need no bookkeeping.
type Engine struct {
	partners PartnerDirectory
	history  OrderHistory
}

// NewEngine creates an Engine reading partners from p and assignment history from h.
func NewEngine(p PartnerDirectory, h OrderHistory) *Engine {
	return &Engine{partners: p, history: h}
}

// FindBestPartner returns the partner that should receive the next order in zone,
// skipping excludePartnerID when it is set. It returns nil, nil when nobody is eligible;
// errors come only from the underlying reads.
func (e *Engine) FindBestPartner(ctx context.Context, zone, excludePartnerID string) (*domain.Partner, error) {
	zone = domain.NormalizeZone(zone)
	if zone == "" {
		return nil, nil
	}

	all, err := e.partners.ListPartnersInZone(ctx, zone)
	if err != nil {
		return nil, err
	}

	ring := Ring(all, zone, excludePartnerID)
	if len(ring) == 0 {
		return nil, nil
	}

	ids := make([]string, len(ring))
	for i, p := range ring {
		ids[i] = p.ID
	}

	last, err := e.history.LatestAssignedInZone(ctx, zone, ids)
	if err != nil {
		return nil, err
	}
	if last == nil || last.AssignedPartnerID == nil {
		return &ring[0], nil
	}

	for i, id := range ids {
		if id == *last.AssignedPartnerID {
			next := ring[(i+1)%len(ring)]
			return &next, nil
		}
	}
	return &ring[0], nil
}

// Ring returns the round-robin order of the partners serving zone: registration time
// ascending, then ID. excludePartnerID, if not empty, is left out.
func Ring(partners []domain.Partner, zone, excludePartnerID string) []domain.Partner {
	ring := make([]domain.Partner, 0, len(partners))
	for _, p := range partners {
		if !p.InZone(zone) || (excludePartnerID != "" && p.ID == excludePartnerID) {
			continue
		}
		ring = append(ring, p)
	}
	sort.SliceStable(ring, func(i, j int) bool {
		if !ring[i].RegisteredAt.Equal(ring[j].RegisteredAt) {
			return ring[i].RegisteredAt.Before(ring[j].RegisteredAt)
		}
		return ring[i].ID < ring[j].ID
	})
	return ring
}
