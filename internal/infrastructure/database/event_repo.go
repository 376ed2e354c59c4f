package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostbot/internal/domain"
	"hostbot/internal/domain/entities"
	"hostbot/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, name, location, start_date, end_date, created_at, updated_at`

func scanEvent(row pgx.Row) (entities.Event, error) {
	var (
		e          entities.Event
		id         int64
		start, end pgtype.Timestamptz
	)
	if err := row.Scan(&id, &e.Name, &e.Location, &start, &end, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return entities.Event{}, err
	}
	e.ID = uint(id)
	e.StartDate = pgtypeTimestamptzToTime(start)
	e.EndDate = pgtypeTimestamptzToTime(end)
	return e, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, int64(id)))
	if err != nil {
		return nil, translateErr("get event by id", err, domain.ErrEventNotFound)
	}
	return &e, nil
}

// ListUpcoming returns events that have not ended yet, soonest first.
func (r *EventRepository) ListUpcoming(ctx context.Context, limit int) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE end_date IS NULL OR end_date >= NOW()
		 ORDER BY start_date ASC NULLS LAST, id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, translateErr("list upcoming events", err, nil)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("list upcoming events", err, nil)
	}
	return out, nil
}
