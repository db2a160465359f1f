// Package onboarding connects the questionnaire's outcome to persistent storage.
package onboarding

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/aimarketcap/internal/profile"
	"github.com/abhisek/aimarketcap/internal/store"
)

// State is what the app needs at startup: whether onboarding already
// finished, and the stored profile if one is usable.
type State struct {
	Completed bool
	Profile   *profile.UserProfile
}

// Hook receives the questionnaire outcome.
type Hook interface {
	Complete(ctx context.Context, p profile.UserProfile) (profile.UserProfile, error)
	Skip(ctx context.Context) error
}

// Service loads and saves onboarding state through an OnboardingRepo.
type Service struct {
	repo store.OnboardingRepo
	log  *zap.Logger
}

var _ Hook = (*Service)(nil)

// NewService creates a Service. A nil logger discards log output.
func NewService(repo store.OnboardingRepo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// Load returns the stored state. Storage errors degrade to "not completed"
// so the UI never blocks on storage; a stored profile that fails validation
// is dropped but the flag is kept.
func (s *Service) Load(ctx context.Context) State {
	rec, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn("onboarding state unavailable, treating as not completed", zap.Error(err))
		return State{}
	}

	st := State{Completed: rec.Completed}
	if rec.Profile != nil {
		p, err := profile.Decode(rec.Profile)
		if err != nil {
			s.log.Warn("discarding stored profile", zap.Error(err))
		} else {
			st.Profile = &p
		}
	}
	s.log.Debug("onboarding state loaded",
		zap.Bool("completed", st.Completed),
		zap.Bool("has_profile", st.Profile != nil))
	return st
}

// Complete stamps p with an ID if it has none, then stores it with the
// completed flag. The stamped profile is returned even if storing fails.
func (s *Service) Complete(ctx context.Context, p profile.UserProfile) (profile.UserProfile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	blob, err := profile.Encode(p)
	if err != nil {
		return p, err
	}
	if err := s.repo.MarkCompleted(ctx, blob); err != nil {
		s.log.Warn("could not persist completed onboarding", zap.String("profile_id", p.ID), zap.Error(err))
		return p, fmt.Errorf("complete onboarding: %w", err)
	}
	s.log.Info("onboarding completed",
		zap.String("profile_id", p.ID),
		zap.String("intent", string(p.Intent)),
		zap.String("role", string(p.Role)))
	return p, nil
}

// Skip stores the completed flag without a profile.
func (s *Service) Skip(ctx context.Context) error {
	if err := s.repo.MarkSkipped(ctx); err != nil {
		s.log.Warn("could not persist skipped onboarding", zap.Error(err))
		return fmt.Errorf("skip onboarding: %w", err)
	}
	s.log.Info("onboarding skipped")
	return nil
}

// Reset clears the stored flag and profile.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("reset onboarding: %w", err)
	}
	s.log.Info("onboarding reset")
	return nil
}
