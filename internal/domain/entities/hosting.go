package entities

import (
	"strings"
	"time"
)

// Hosting is a lodging offered by a host for one event.
type Hosting struct {
	ID              uint
	EventID         uint
	HostID          string
	HostName        string
	AvailableBeds   int
	CustomRules     string
	AddressOverride string
	CityOverride    string
	ZipCodeOverride string
	CountryOverride string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Address joins the non-empty address parts, "" when none is set.
func (h *Hosting) Address() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{h.AddressOverride, strings.TrimSpace(h.ZipCodeOverride + " " + h.CityOverride), h.CountryOverride} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// HostProfile holds the defaults applied when a host proposes a hosting
// without specifying beds or rules.
type HostProfile struct {
	UserID        string
	AvailableBeds int
	HomeRules     string
	UpdatedAt     time.Time
}
