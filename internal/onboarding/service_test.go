package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/aimarketcap/internal/profile"
	"github.com/abhisek/aimarketcap/internal/store"
)

// failingRepo fails every operation.
type failingRepo struct{}

var errDiskGone = errors.New("disk gone")

func (failingRepo) Load(context.Context) (store.OnboardingRecord, error) {
	return store.OnboardingRecord{}, errDiskGone
}
func (failingRepo) MarkCompleted(context.Context, []byte) error { return errDiskGone }
func (failingRepo) MarkSkipped(context.Context) error           { return errDiskGone }
func (failingRepo) Reset(context.Context) error                 { return errDiskGone }

func sampleProfile() profile.UserProfile {
	return profile.UserProfile{
		Intent:     profile.IntentExploreTrending,
		Challenge:  profile.ChallengeProductivity,
		Role:       profile.RoleFreelancer,
		Experience: profile.ExperienceIntermediate,
		Budget:     profile.BudgetMedium,
	}
}

func newMemoryService() *Service {
	return NewService(store.NewOnboardingRepo(store.NewMemoryKV()), nil)
}

func TestLoadEmpty(t *testing.T) {
	s := newMemoryService()
	assert.Equal(t, State{}, s.Load(context.Background()))
}

func TestCompleteThenLoad(t *testing.T) {
	ctx := context.Background()
	s := newMemoryService()

	saved, err := s.Complete(ctx, sampleProfile())
	require.NoError(t, err)
	_, err = uuid.Parse(saved.ID)
	require.NoError(t, err, "profile should be stamped with a UUID")

	st := s.Load(ctx)
	assert.True(t, st.Completed)
	require.NotNil(t, st.Profile)
	assert.Equal(t, saved.ID, st.Profile.ID)
	assert.Equal(t, profile.RoleFreelancer, st.Profile.Role)
}

func TestCompleteKeepsExistingID(t *testing.T) {
	p := sampleProfile()
	p.ID = "fixed"
	saved, err := newMemoryService().Complete(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "fixed", saved.ID)
}

func TestCompleteRejectsIncompleteProfile(t *testing.T) {
	s := newMemoryService()
	_, err := s.Complete(context.Background(), profile.UserProfile{Intent: profile.IntentBrowsing})
	assert.Error(t, err)
	assert.False(t, s.Load(context.Background()).Completed)
}

func TestSkipSetsFlagOnly(t *testing.T) {
	ctx := context.Background()
	s := newMemoryService()
	require.NoError(t, s.Skip(ctx))

	st := s.Load(ctx)
	assert.True(t, st.Completed)
	assert.Nil(t, st.Profile)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := newMemoryService()
	_, err := s.Complete(ctx, sampleProfile())
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	assert.Equal(t, State{}, s.Load(ctx))
}

func TestCorruptProfileDropped(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, map[string]string{
		store.KeyOnboardingCompleted: "true",
		store.KeyUserProfile:         `{"intent":"browsing"}`,
	}))

	core, logs := observer.New(zap.WarnLevel)
	s := NewService(store.NewOnboardingRepo(kv), zap.New(core))

	st := s.Load(ctx)
	assert.True(t, st.Completed)
	assert.Nil(t, st.Profile)
	assert.Equal(t, 1, logs.FilterMessage("discarding stored profile").Len())
}

func TestStorageFailureDegrades(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	s := NewService(failingRepo{}, zap.New(core))

	assert.Equal(t, State{}, s.Load(ctx))

	saved, err := s.Complete(ctx, sampleProfile())
	assert.ErrorIs(t, err, errDiskGone)
	assert.NotEmpty(t, saved.ID, "caller still gets the stamped profile")

	assert.ErrorIs(t, s.Skip(ctx), errDiskGone)
	assert.ErrorIs(t, s.Reset(ctx), errDiskGone)
	assert.Equal(t, 3, logs.Len())
}
