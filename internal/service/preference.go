package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/authflow/internal/cache"
	"github.com/umalmyha/authflow/internal/model"
	"github.com/umalmyha/authflow/internal/repository"
)

// PreferenceService reads and writes remember-me preference of a single profile
type PreferenceService interface {
	Load(context.Context) (model.Preference, error)
	Remember(context.Context, string) error
	Forget(context.Context) error
}

type preferenceService struct {
	profile   string
	prefRps   repository.PreferenceRepository
	prefCache cache.PreferenceCache
}

func NewPreferenceService(profile string, prefRps repository.PreferenceRepository, prefCache cache.PreferenceCache) PreferenceService {
	if profile == "" {
		profile = model.DefaultProfile
	}
	return &preferenceService{profile: profile, prefRps: prefRps, prefCache: prefCache}
}

// Load returns stored preference, absent record means remember-me is off
func (s *preferenceService) Load(ctx context.Context) (model.Preference, error) {
	p, err := s.prefCache.Find(ctx, s.profile)
	if err != nil {
		logrus.Warnf("failed to read preference %s from cache - %v", s.profile, err)
	}

	if p != nil {
		return *p, nil
	}

	p, err = s.prefRps.Find(ctx, s.profile)
	if err != nil {
		return model.Preference{}, err
	}

	if p == nil || p.Version != model.PreferenceSchemaVersion {
		return model.Preference{Profile: s.profile, Version: model.PreferenceSchemaVersion}, nil
	}

	if err := s.prefCache.Cache(ctx, p); err != nil {
		logrus.Warnf("failed to cache preference %s - %v", s.profile, err)
	}
	return *p, nil
}

func (s *preferenceService) Remember(ctx context.Context, email string) error {
	if err := s.prefCache.Evict(ctx, s.profile); err != nil {
		return err
	}
	return s.prefRps.Save(ctx, model.RememberedPreference(s.profile, email))
}

func (s *preferenceService) Forget(ctx context.Context) error {
	if err := s.prefCache.Evict(ctx, s.profile); err != nil {
		return err
	}
	return s.prefRps.Delete(ctx, s.profile)
}
