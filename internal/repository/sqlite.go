package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/umalmyha/authflow/internal/model"
	_ "modernc.org/sqlite" // registers sqlite driver
)

type sqlitePreferenceRepository struct {
	db        *sql.DB
	writeLock *sync.Mutex // go-sqlite does not support concurrent writes
}

// NewSqlitePreferenceRepository opens db file at path and creates schema if needed
func NewSqlitePreferenceRepository(ctx context.Context, path string) (PreferenceRepository, func() error, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite db %s - %w", path, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping sqlite db %s - %w", path, err)
	}

	q := `CREATE TABLE IF NOT EXISTS preferences (
		profile     TEXT    PRIMARY KEY,
		version     INTEGER NOT NULL,
		remember_me INTEGER NOT NULL,
		user_email  TEXT    NOT NULL
	)`
	if _, err := db.ExecContext(ctx, q); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create preferences schema - %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to set busy timeout - %w", err)
	}

	return &sqlitePreferenceRepository{db: db, writeLock: new(sync.Mutex)}, db.Close, nil
}

func (r *sqlitePreferenceRepository) Find(ctx context.Context, profile string) (*model.Preference, error) {
	q := "SELECT profile, version, remember_me, user_email FROM preferences WHERE profile = ?"

	var p model.Preference
	err := r.db.QueryRowContext(ctx, q, profile).Scan(&p.Profile, &p.Version, &p.RememberMe, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *sqlitePreferenceRepository) Save(ctx context.Context, p *model.Preference) error {
	r.writeLock.Lock()
	defer r.writeLock.Unlock()

	q := `INSERT INTO preferences(profile, version, remember_me, user_email) VALUES(?, ?, ?, ?)
		  ON CONFLICT(profile) DO UPDATE SET version = excluded.version, remember_me = excluded.remember_me, user_email = excluded.user_email`
	if _, err := r.db.ExecContext(ctx, q, p.Profile, p.Version, p.RememberMe, p.Email); err != nil {
		return err
	}
	return nil
}

func (r *sqlitePreferenceRepository) Delete(ctx context.Context, profile string) error {
	r.writeLock.Lock()
	defer r.writeLock.Unlock()

	q := "DELETE FROM preferences WHERE profile = ?"
	if _, err := r.db.ExecContext(ctx, q, profile); err != nil {
		return err
	}
	return nil
}
