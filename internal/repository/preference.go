package repository

import (
	"context"

	"github.com/umalmyha/authflow/internal/model"
)

// PreferenceRepository is durable storage of remember-me preference.
// Find returns nil preference when nothing is stored for profile.
// Save replaces the whole record at once.
type PreferenceRepository interface {
	Find(context.Context, string) (*model.Preference, error)
	Save(context.Context, *model.Preference) error
	Delete(context.Context, string) error
}
