package store

import (
	"context"
	"fmt"
)

// Keys under which onboarding state is persisted.
const (
	KeyOnboardingCompleted = "onboarding_completed"
	KeyUserProfile         = "user_profile"
)

// OnboardingRecord is the persisted onboarding state. Profile is the raw
// serialized profile, or nil if none was stored.
type OnboardingRecord struct {
	Completed bool
	Profile   []byte
}

// OnboardingRepo persists whether onboarding finished and the profile it produced.
type OnboardingRepo interface {
	// Load reads the stored flag and profile blob.
	Load(ctx context.Context) (OnboardingRecord, error)

	// MarkCompleted stores the flag and the profile blob together.
	MarkCompleted(ctx context.Context, profile []byte) error

	// MarkSkipped stores the flag without touching any stored profile.
	MarkSkipped(ctx context.Context) error

	// Reset clears the flag and the profile.
	Reset(ctx context.Context) error
}

// NewOnboardingRepo returns an OnboardingRepo over any KV.
func NewOnboardingRepo(kv KV) OnboardingRepo {
	return &kvOnboardingRepo{kv: kv}
}

type kvOnboardingRepo struct {
	kv KV
}

func (r *kvOnboardingRepo) Load(ctx context.Context) (OnboardingRecord, error) {
	var rec OnboardingRecord

	flag, ok, err := r.kv.Get(ctx, KeyOnboardingCompleted)
	if err != nil {
		return rec, fmt.Errorf("load onboarding flag: %w", err)
	}
	rec.Completed = ok && flag == "true"

	blob, ok, err := r.kv.Get(ctx, KeyUserProfile)
	if err != nil {
		return rec, fmt.Errorf("load user profile: %w", err)
	}
	if ok {
		rec.Profile = []byte(blob)
	}
	return rec, nil
}

func (r *kvOnboardingRepo) MarkCompleted(ctx context.Context, profile []byte) error {
	err := r.kv.Set(ctx, map[string]string{
		KeyOnboardingCompleted: "true",
		KeyUserProfile:         string(profile),
	})
	if err != nil {
		return fmt.Errorf("mark onboarding completed: %w", err)
	}
	return nil
}

func (r *kvOnboardingRepo) MarkSkipped(ctx context.Context) error {
	if err := r.kv.Set(ctx, map[string]string{KeyOnboardingCompleted: "true"}); err != nil {
		return fmt.Errorf("mark onboarding skipped: %w", err)
	}
	return nil
}

func (r *kvOnboardingRepo) Reset(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeyOnboardingCompleted, KeyUserProfile); err != nil {
		return fmt.Errorf("reset onboarding: %w", err)
	}
	return nil
}
