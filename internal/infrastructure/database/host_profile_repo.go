package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hostbot/internal/domain"
	"hostbot/internal/domain/entities"
	"hostbot/internal/ports/output"
)

var _ output.HostProfileRepository = (*HostProfileRepository)(nil)

type HostProfileRepository struct {
	db *pgxpool.Pool
}

func NewHostProfileRepository(db *pgxpool.Pool) *HostProfileRepository {
	return &HostProfileRepository{db: db}
}

func (r *HostProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.HostProfile, error) {
	var p entities.HostProfile
	err := r.db.QueryRow(ctx,
		`SELECT user_id, available_beds, home_rules, updated_at FROM host_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.AvailableBeds, &p.HomeRules, &p.UpdatedAt)
	if err != nil {
		return nil, translateErr("get host profile", err, domain.ErrProfileNotFound)
	}
	return &p, nil
}

func (r *HostProfileRepository) Upsert(ctx context.Context, profile *entities.HostProfile) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO host_profiles (user_id, available_beds, home_rules)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		 SET available_beds = EXCLUDED.available_beds,
		     home_rules = EXCLUDED.home_rules,
		     updated_at = NOW()
		 RETURNING updated_at`,
		profile.UserID, profile.AvailableBeds, profile.HomeRules,
	).Scan(&profile.UpdatedAt)
	return translateErr("upsert host profile", err, nil)
}
