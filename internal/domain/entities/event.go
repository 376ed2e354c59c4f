package entities

import "time"

// Event is the gathering hostings are offered for.
type Event struct {
	ID        uint
	Name      string
	Location  string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasStarted reports whether the event has begun at now (zero StartDate = never).
func (e *Event) HasStarted(now time.Time) bool {
	return !e.StartDate.IsZero() && !now.Before(e.StartDate)
}
