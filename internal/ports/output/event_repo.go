package output

import (
	"context"

	"hostbot/internal/domain/entities"
)

type EventRepository interface {
	FindByID(ctx context.Context, id uint) (*entities.Event, error)
	ListUpcoming(ctx context.Context, limit int) ([]entities.Event, error)
}
