package entities

import (
	"time"

	"hostbot/internal/domain"
)

// HostingRequest is a user's request to stay at a hosting.
// EventID and HostID are denormalized from the referenced hosting.
type HostingRequest struct {
	ID          uint
	HostingID   uint
	EventID     uint
	HostID      string
	RequesterID string
	Requester   string
	Status      domain.RequestStatus
	Message     string
	HostMessage string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *HostingRequest) IsPending() bool {
	return r.Status == domain.StatusPending
}

func (r *HostingRequest) IsAccepted() bool {
	return r.Status == domain.StatusAccepted
}
