package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostbot/internal/domain"
	"hostbot/internal/domain/entities"
	"hostbot/internal/ports/output"
)

var _ output.HostingRepository = (*HostingRepository)(nil)

// HostingRepository implements output.HostingRepository (and therefore the
// hosting catalog) with pgx.
type HostingRepository struct {
	db *pgxpool.Pool
}

func NewHostingRepository(db *pgxpool.Pool) *HostingRepository {
	return &HostingRepository{db: db}
}

const hostingColumns = `id, event_id, host_id, host_name, available_beds, custom_rules,
	address_override, city_override, zip_code_override, country_override,
	is_active, created_at, updated_at`

func scanHosting(row pgx.Row) (entities.Hosting, error) {
	var (
		h           entities.Hosting
		id, eventID int64
	)
	err := row.Scan(&id, &eventID, &h.HostID, &h.HostName, &h.AvailableBeds, &h.CustomRules,
		&h.AddressOverride, &h.CityOverride, &h.ZipCodeOverride, &h.CountryOverride,
		&h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return entities.Hosting{}, err
	}
	h.ID = uint(id)
	h.EventID = uint(eventID)
	return h, nil
}

func (r *HostingRepository) Create(ctx context.Context, hosting *entities.Hosting) error {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO hostings (event_id, host_id, host_name, available_beds, custom_rules,
			address_override, city_override, zip_code_override, country_override, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		int64(hosting.EventID), hosting.HostID, hosting.HostName, hosting.AvailableBeds, hosting.CustomRules,
		hosting.AddressOverride, hosting.CityOverride, hosting.ZipCodeOverride, hosting.CountryOverride, hosting.IsActive,
	).Scan(&id, &hosting.CreatedAt, &hosting.UpdatedAt)
	if err != nil {
		return translateErr("create hosting", err, nil)
	}
	hosting.ID = uint(id)
	return nil
}

func (r *HostingRepository) FindByID(ctx context.Context, id uint) (*entities.Hosting, error) {
	h, err := scanHosting(r.db.QueryRow(ctx, `SELECT `+hostingColumns+` FROM hostings WHERE id = $1`, int64(id)))
	if err != nil {
		return nil, translateErr("get hosting by id", err, domain.ErrHostingNotFound)
	}
	return &h, nil
}

// List returns the active hostings of eventID, oldest first.
func (r *HostingRepository) List(ctx context.Context, eventID uint) ([]entities.Hosting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+hostingColumns+`
		 FROM hostings
		 WHERE event_id = $1 AND is_active
		 ORDER BY created_at ASC, id ASC`,
		int64(eventID),
	)
	if err != nil {
		return nil, translateErr("list hostings", err, nil)
	}
	defer rows.Close()

	out := make([]entities.Hosting, 0)
	for rows.Next() {
		h, err := scanHosting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hosting: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("list hostings", err, nil)
	}
	return out, nil
}
