package repository

import (
	"context"
	"sync"

	"github.com/umalmyha/authflow/internal/model"
)

type memoryPreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[string]model.Preference
}

// NewMemoryPreferenceRepository builds process-local repository, nothing survives restart
func NewMemoryPreferenceRepository() PreferenceRepository {
	return &memoryPreferenceRepository{prefs: make(map[string]model.Preference)}
}

func (r *memoryPreferenceRepository) Find(_ context.Context, profile string) (*model.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.prefs[profile]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memoryPreferenceRepository) Save(_ context.Context, p *model.Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs[p.Profile] = *p
	return nil
}

func (r *memoryPreferenceRepository) Delete(_ context.Context, profile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.prefs, profile)
	return nil
}
