package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
	"dashboard/internal/infra/persistence/memory"
	mockService "dashboard/internal/mocks/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDataset() repository.Dataset {
	return repository.Dataset{
		Devices: []entity.Device{
			{ID: "dev-1", UserID: "user-1", Platform: "macos", TrustScore: 80, CreatedAt: baseTime},
			{ID: "dev-2", UserID: "user-1", Platform: "ios", TrustScore: 95, CreatedAt: baseTime.Add(time.Hour)},
			{ID: "dev-3", UserID: "user-1", Platform: "android", Blocked: true, TrustScore: 20, CreatedAt: baseTime.Add(2 * time.Hour)},
			{ID: "dev-4", UserID: "user-2", Platform: "linux", TrustScore: 60, CreatedAt: baseTime.Add(3 * time.Hour)},
			{ID: "dev-5", UserID: "user-2", Platform: "android", TrustScore: 45, CreatedAt: baseTime.Add(4 * time.Hour)},
		},
		Sessions: []entity.Session{
			{ID: "ses-1", UserID: "user-1", DeviceID: "dev-1", CreatedAt: baseTime},
			{ID: "ses-2", UserID: "user-1", DeviceID: "dev-2", CreatedAt: baseTime},
			{ID: "ses-3", UserID: "user-2", DeviceID: "dev-4", CreatedAt: baseTime},
		},
		SecurityEvents: []entity.SecurityEvent{
			{ID: "evt-1", Type: "login_failed", Severity: "medium", UserID: "user-1", CreatedAt: baseTime},
			{ID: "evt-2", Type: "new_device", Severity: "low", UserID: "user-2", CreatedAt: baseTime.AddDate(0, 0, 2)},
			{ID: "evt-3", Type: "login_failed", Severity: "high", UserID: "user-2", CreatedAt: baseTime.AddDate(0, 0, 1)},
		},
		WalletLedger: []entity.WalletLedgerEntry{
			{ID: "led-1", UserID: "user-1", Type: "deposit", Amount: 50000, CreatedAt: baseTime},
			{ID: "led-2", UserID: "user-1", Type: "fee", Amount: -250, CreatedAt: baseTime.AddDate(0, 1, 0)},
			{ID: "led-3", UserID: "user-2", Type: "deposit", Amount: 1000, CreatedAt: baseTime.AddDate(0, 0, 10)},
		},
	}
}

// loadedStore returns a store holding testDataset.
func loadedStore(t *testing.T) *memory.Store {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.Load(context.Background(), testDataset()))

	return store
}

// readySeeder expects any number of EnsureSeeded calls and reports success.
func readySeeder(t *testing.T) *mockService.MockSeeder {
	t.Helper()

	seeder := mockService.NewMockSeeder(t)
	seeder.EXPECT().EnsureSeeded(mock.Anything).Return(nil).Maybe()

	return seeder
}

// adminContext returns a context carrying a request id and an admin session.
func adminContext() context.Context {
	ctx := deliverycontext.WithRequestID(context.Background(), "abc-123")

	return deliverycontext.WithAdminSession(ctx, &entity.AdminSession{UserID: "admin-1", Roles: entity.Roles{entity.RoleAdmin}})
}
