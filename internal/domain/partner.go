package domain

import (
	"strings"
	"time"
)

// Partner represents a registered delivery partner.
type Partner struct {
	ID           string
	Name         string
	ServiceZone  string
	RegisteredAt time.Time
}

// NormalizeZone returns the comparison form of a zone code.
func NormalizeZone(zone string) string {
	return strings.ToLower(strings.TrimSpace(zone))
}

// InZone reports whether the partner serves the given zone.
// Partners without a zone never match.
func (p Partner) InZone(zone string) bool {
	own := NormalizeZone(p.ServiceZone)
	return own != "" && own == NormalizeZone(zone)
}
