package impl

import (
	"context"
	"log/slog"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/query"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/usecase"
)

// walletLedgerService implements the WalletLedgerUsecase interface.
type walletLedgerService struct {
	lister[entity.WalletLedgerEntry]

	logger *slog.Logger
}

// NewWalletLedgerService is the constructor for walletLedgerService.
func NewWalletLedgerService(
	seeder service.Seeder,
	ledgerRepo repository.WalletLedgerRepository,
	logger *slog.Logger,
) usecase.WalletLedgerUsecase {
	return &walletLedgerService{
		lister: lister[entity.WalletLedgerEntry]{
			seeder:  seeder,
			repo:    ledgerRepo,
			filters: walletLedgerFilters,
			order:   query.NewestFirst,
		},
		logger: logger,
	}
}

// ListWalletLedger returns the ledger entries matching q, newest first.
func (srv *walletLedgerService) ListWalletLedger(ctx context.Context, q usecase.ListQuery) (query.Page[entity.WalletLedgerEntry], error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Listing wallet ledger", slog.Any("filters", q.Filters))

	return srv.list(ctx, q)
}
