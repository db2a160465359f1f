package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.OnboardingRepo().MarkSkipped(ctx))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	rec, err := s.OnboardingRepo().Load(ctx)
	require.NoError(t, err)
	assert.True(t, rec.Completed)
}

func TestKVGetSetDelete(t *testing.T) {
	for name, kv := range map[string]KV{
		"sqlite": openTestStore(t).KV(),
		"memory": NewMemoryKV(),
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := kv.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(ctx, map[string]string{"a": "1", "b": "2"}))
			require.NoError(t, kv.Set(ctx, map[string]string{"a": "3"}))

			v, ok, err := kv.Get(ctx, "a")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "3", v)

			require.NoError(t, kv.Delete(ctx, "a", "never-set"))
			_, ok, err = kv.Get(ctx, "a")
			require.NoError(t, err)
			assert.False(t, ok)

			v, _, _ = kv.Get(ctx, "b")
			assert.Equal(t, "2", v)
		})
	}
}

func TestKVSetOverwritesSingleRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	kv := s.KV()

	require.NoError(t, kv.Set(ctx, map[string]string{"a": "1"}))
	require.NoError(t, kv.Set(ctx, map[string]string{"a": "2", "b": "3"}))

	n, err := s.Client().KV.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "upsert keeps one row per key")

	v, ok, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestKVEmptyArgs(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()
	assert.NoError(t, kv.Set(ctx, nil))
	assert.NoError(t, kv.Delete(ctx))
}

func TestMemoryKVConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewOnboardingRepo(NewMemoryKV())

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				assert.NoError(t, repo.MarkSkipped(ctx))
				return
			}
			assert.NoError(t, repo.MarkCompleted(ctx, []byte(fmt.Sprintf(`{"n":%d}`, i))))
		}()
	}
	wg.Wait()

	rec, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, rec.Completed)
	assert.NotNil(t, rec.Profile)
}

func TestOnboardingLifecycle(t *testing.T) {
	for name, repo := range map[string]OnboardingRepo{
		"sqlite": openTestStore(t).OnboardingRepo(),
		"memory": NewOnboardingRepo(NewMemoryKV()),
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			rec, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.False(t, rec.Completed)
			assert.Nil(t, rec.Profile)

			blob := []byte(`{"intent":"browsing"}`)
			require.NoError(t, repo.MarkCompleted(ctx, blob))
			rec, err = repo.Load(ctx)
			require.NoError(t, err)
			assert.True(t, rec.Completed)
			assert.Equal(t, blob, rec.Profile)

			require.NoError(t, repo.Reset(ctx))
			rec, err = repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, OnboardingRecord{}, rec)

			require.NoError(t, repo.MarkSkipped(ctx))
			rec, err = repo.Load(ctx)
			require.NoError(t, err)
			assert.True(t, rec.Completed)
			assert.Nil(t, rec.Profile, "skipping stores no profile")
		})
	}
}

func TestFlagMustBeTrue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, map[string]string{KeyOnboardingCompleted: "false"}))

	rec, err := NewOnboardingRepo(kv).Load(ctx)
	require.NoError(t, err)
	assert.False(t, rec.Completed)
}

func TestDefaultDBPathEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("AIMARKETCAP_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, filepath.Dir(want))
}

func TestDefaultDBPathXDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("AIMARKETCAP_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "aimarketcap", "aimarketcap.db"), got)
}
