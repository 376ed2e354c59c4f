package output

import (
	"context"

	"hostbot/internal/domain/entities"
)

// HostingCatalog is the read-only view of the hostings of one event.
// List returns domain.ErrNotAvailable when the fetch could not complete.
type HostingCatalog interface {
	List(ctx context.Context, eventID uint) ([]entities.Hosting, error)
}

type HostingRepository interface {
	HostingCatalog
	Create(ctx context.Context, hosting *entities.Hosting) error
	FindByID(ctx context.Context, id uint) (*entities.Hosting, error)
}

type HostProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entities.HostProfile, error)
	Upsert(ctx context.Context, profile *entities.HostProfile) error
}
