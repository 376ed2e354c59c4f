package input

import (
	"context"

	"hostbot/internal/application"
	"hostbot/internal/domain/entities"
)

type HostingRequestUseCase interface {
	AcceptedHostingIDs(ctx context.Context, eventID uint, userID string) ([]uint, error)
	Overview(ctx context.Context, eventID uint, userID string, acceptedHostingIDs []uint) (*application.Overview, error)
	MyRequestsForEvent(ctx context.Context, eventID uint, userID string) ([]entities.HostingRequest, error)
	Submit(ctx context.Context, overview *application.Overview, hostingID uint, userID, username, message string) (*entities.HostingRequest, error)
	Cancel(ctx context.Context, requestID uint, userID string) (*entities.HostingRequest, bool, error)
	ReceivedRequests(ctx context.Context, hostID string) ([]entities.HostingRequest, error)
	Accept(ctx context.Context, requestID uint, hostID, hostMessage string) (*entities.HostingRequest, error)
	Reject(ctx context.Context, requestID uint, hostID, hostMessage string) (*entities.HostingRequest, error)
}

var _ HostingRequestUseCase = (*application.HostingRequestService)(nil)
