// Package zonelock serializes work per delivery zone inside one process.
package zonelock

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v4"

	"flora-partner-assignment/internal/domain"
)

// Locker hands out one mutex per normalized zone code.
// Mutexes are never evicted; the number of zones is small and bounded by the partner directory.
type Locker struct {
	zones *xsync.Map[string, *sync.Mutex]
}

// New returns an empty Locker.
func New() *Locker {
	return &Locker{zones: xsync.NewMap[string, *sync.Mutex]()}
}

// Lock blocks until the zone is free and returns the matching unlock function.
func (l *Locker) Lock(zone string) (unlock func()) {
	mu, _ := l.zones.LoadOrStore(domain.NormalizeZone(zone), &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}

// Size returns the number of zones seen so far.
func (l *Locker) Size() int {
	return l.zones.Size()
}
