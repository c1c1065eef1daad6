package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/authflow/internal/model"
)

type postgresPreferenceRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPreferenceRepository(p *pgxpool.Pool) PreferenceRepository {
	return &postgresPreferenceRepository{pool: p}
}

func (r *postgresPreferenceRepository) Find(ctx context.Context, profile string) (*model.Preference, error) {
	q := "SELECT profile, version, remember_me, user_email FROM preferences WHERE profile = $1"

	var p model.Preference
	if err := r.pool.QueryRow(ctx, q, profile).Scan(&p.Profile, &p.Version, &p.RememberMe, &p.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresPreferenceRepository) Save(ctx context.Context, p *model.Preference) error {
	q := `INSERT INTO preferences(profile, version, remember_me, user_email) VALUES($1, $2, $3, $4)
		  ON CONFLICT (profile) DO UPDATE SET version = EXCLUDED.version, remember_me = EXCLUDED.remember_me, user_email = EXCLUDED.user_email`
	if _, err := r.pool.Exec(ctx, q, p.Profile, p.Version, p.RememberMe, p.Email); err != nil {
		return err
	}
	return nil
}

func (r *postgresPreferenceRepository) Delete(ctx context.Context, profile string) error {
	q := "DELETE FROM preferences WHERE profile = $1"
	if _, err := r.pool.Exec(ctx, q, profile); err != nil {
		return err
	}
	return nil
}
