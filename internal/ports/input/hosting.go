package input

import (
	"context"

	"hostbot/internal/application"
	"hostbot/internal/domain/entities"
)

type HostingUseCase interface {
	GetEvent(ctx context.Context, eventID uint) (*entities.Event, error)
	ListUpcomingEvents(ctx context.Context, limit int) ([]entities.Event, error)
	ProposeHosting(ctx context.Context, in application.ProposeHostingInput) (*entities.Hosting, error)
	SaveHostProfile(ctx context.Context, profile *entities.HostProfile) error
	GetHosting(ctx context.Context, hostingID uint) (*entities.Hosting, error)
	ListForEvent(ctx context.Context, eventID uint) ([]entities.Hosting, error)
	AvailablePlaces(ctx context.Context, hostingID uint) (*application.Places, error)
}

var _ HostingUseCase = (*application.HostingService)(nil)
