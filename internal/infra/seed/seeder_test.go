package seed

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"dashboard/internal/domain/entity"
	"dashboard/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBaselineSeeder(t *testing.T) (*Seeder, *memory.Store) {
	t.Helper()

	dataset, err := Baseline()
	require.NoError(t, err)

	store := memory.NewStore()

	return NewWithDataset(store, dataset, discardLogger()), store
}

func TestBaseline(t *testing.T) {
	t.Parallel()

	dataset, err := Baseline()
	require.NoError(t, err)

	perUser := map[string]int{}
	for _, d := range dataset.Devices {
		perUser[d.UserID]++
		assert.GreaterOrEqual(t, d.TrustScore, entity.MinTrustScore)
		assert.LessOrEqual(t, d.TrustScore, entity.MaxTrustScore)
		assert.False(t, d.CreatedAt.IsZero(), d.ID)
	}
	assert.Equal(t, map[string]int{"user-1": 3, "user-2": 2}, perUser)

	assert.NotEmpty(t, dataset.Sessions)
	assert.NotEmpty(t, dataset.SecurityEvents)
	assert.NotEmpty(t, dataset.WalletLedger)
	assert.Empty(t, dataset.AuditLogs)
	assert.Equal(t, "14.4", dataset.Devices[0].Attributes["osVersion"])
}

func TestSeeder_EnsureSeededIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seeder, store := newBaselineSeeder(t)

	require.NoError(t, seeder.EnsureSeeded(ctx))
	first := store.Sizes()
	assert.Equal(t, 5, first[memory.CollectionDevices])

	for range 3 {
		require.NoError(t, seeder.EnsureSeeded(ctx))
		assert.Equal(t, first, store.Sizes())
	}
}

func TestSeeder_EnsureSeededConcurrently(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seeder, store := newBaselineSeeder(t)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, seeder.EnsureSeeded(ctx))
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, store.Sizes()[memory.CollectionDevices])
}

func TestSeeder_SkipsPopulatedStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seeder, store := newBaselineSeeder(t)

	require.NoError(t, memory.NewAuditLogRepository(store).Append(ctx, entity.AuditLog{ID: "audit-1"}))
	require.NoError(t, seeder.EnsureSeeded(ctx))

	assert.Equal(t, 0, store.Sizes()[memory.CollectionDevices])
}

func TestSeeder_ResetThenReseed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seeder, store := newBaselineSeeder(t)
	require.NoError(t, seeder.EnsureSeeded(ctx))

	require.NoError(t, memory.NewSessionRepository(store).Append(ctx, entity.Session{ID: "ses-extra"}))
	require.NoError(t, seeder.Reset(ctx))

	empty, err := store.IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, seeder.EnsureSeeded(ctx))
	_, err = memory.NewSessionRepository(store).FindByID(ctx, "ses-extra")
	assert.Error(t, err)
}

func TestSeeder_Disabled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seeder, store := newBaselineSeeder(t)
	seeder.enabled = false

	require.NoError(t, seeder.EnsureSeeded(ctx))
	empty, err := store.IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestSeeder_BrokenDatasetLeavesStoreEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dataset, err := Baseline()
	require.NoError(t, err)
	dataset.WalletLedger = append(dataset.WalletLedger, dataset.WalletLedger[0])

	store := memory.NewStore()
	seeder := NewWithDataset(store, dataset, discardLogger())

	require.Error(t, seeder.EnsureSeeded(ctx))
	empty, err := store.IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(strings.NewReader("devices:\n  - id: dev-1\n    colour: red\n"))
		assert.Error(t, err)
	})

	t.Run("rejects trust score out of range", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(strings.NewReader("devices:\n  - id: dev-1\n    trustScore: 250\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `fixture device "dev-1"`)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		dataset, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		assert.Zero(t, dataset.Size())
	})
}

func TestLoadConfigured(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`sessions:
  - id: ses-1
    userId: user-1
    createdAt: 2024-01-01T00:00:00Z
`), 0o600))

	dataset, err := loadConfigured(path)
	require.NoError(t, err)
	require.Len(t, dataset.Sessions, 1)
	assert.Equal(t, "user-1", dataset.Sessions[0].UserID)

	_, err = loadConfigured(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
