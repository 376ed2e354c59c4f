package output

import (
	"context"

	"hostbot/internal/domain"
	"hostbot/internal/domain/entities"
)

// RequestLedger is the read-only view of a user's own hosting requests,
// across all events. ListMine returns domain.ErrNotAvailable when the fetch
// could not complete.
type RequestLedger interface {
	ListMine(ctx context.Context, requesterID string) ([]entities.HostingRequest, error)
}

type HostingRequestRepository interface {
	RequestLedger
	// Create persists a PENDING request. The backend refuses own hostings,
	// requesters already accepted for the event and duplicate active requests.
	Create(ctx context.Context, req *entities.HostingRequest) error
	FindByID(ctx context.Context, id uint) (*entities.HostingRequest, error)
	FindByHostID(ctx context.Context, hostID string) ([]entities.HostingRequest, error)
	// AcceptedHostingIDs is the already-filtered query of the hostings of
	// eventID the requester was accepted at.
	AcceptedHostingIDs(ctx context.Context, requesterID string, eventID uint) ([]uint, error)
	// UpdateStatus writes req.Status and req.HostMessage when the stored
	// status is still from. Moving to ACCEPTED also fails with
	// domain.ErrAcceptedForEvent when the requester is already accepted for
	// the event, and with domain.ErrNoPlacesAvailable when the hosting is full.
	UpdateStatus(ctx context.Context, req *entities.HostingRequest, from domain.RequestStatus) error
	CountByHostingIDAndStatus(ctx context.Context, hostingID uint, status domain.RequestStatus) (int64, error)
}
