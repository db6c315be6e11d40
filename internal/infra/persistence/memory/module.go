package memory

import (
	"dashboard/internal/domain/repository"

	"go.uber.org/fx"
)

// Module provides the in-memory store and every repository built on it.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewStore,
		fx.Annotate(func(s *Store) *Store { return s }, fx.As(new(repository.StoreManager))),
		NewDeviceRepository,
		NewSessionRepository,
		NewSecurityEventRepository,
		NewAuditLogRepository,
		NewWalletLedgerRepository,
	),
)
