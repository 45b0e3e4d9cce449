package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luciafdez/clases_bot/internal/model"
	"github.com/luciafdez/clases_bot/internal/repository/base"
)

// ProfileRepository stores the single tutor profile row. Reads never
// fail on absence: a missing profile is the zero profile, so money
// computations evaluate to 0 instead of erroring before setup.
type ProfileRepository struct {
	*base.Repository
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{Repository: base.NewRepository(pool)}
}

// Get returns the profile, or a zero-valued one when none was saved yet.
func (r *ProfileRepository) Get(ctx context.Context) (*model.Profile, error) {
	query := `
		SELECT id, chat_id, hourly_rate_cents, base_rate_cents, meta_hours_monthly, updated_at
		FROM profile
		WHERE id = 1
	`

	var profile model.Profile
	err := r.QueryRow(ctx, query).Scan(
		&profile.ID,
		&profile.ChatID,
		&profile.HourlyRateCents,
		&profile.BaseRateCents,
		&profile.MetaHoursMonthly,
		&profile.UpdatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return &model.Profile{ID: 1}, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

// Upsert saves the profile, creating the row on first write.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	query := `
		INSERT INTO profile (id, chat_id, hourly_rate_cents, base_rate_cents, meta_hours_monthly, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET chat_id = EXCLUDED.chat_id,
		    hourly_rate_cents = EXCLUDED.hourly_rate_cents,
		    base_rate_cents = EXCLUDED.base_rate_cents,
		    meta_hours_monthly = EXCLUDED.meta_hours_monthly,
		    updated_at = now()
		RETURNING updated_at
	`

	err := r.QueryRow(
		ctx, query,
		profile.ChatID,
		profile.HourlyRateCents,
		profile.BaseRateCents,
		profile.MetaHoursMonthly,
	).Scan(&profile.UpdatedAt)

	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	profile.ID = 1
	return nil
}
