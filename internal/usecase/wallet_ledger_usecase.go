package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/query"
)

// WalletLedgerUsecase defines the interface for reading wallet movements
type WalletLedgerUsecase interface {
	// ListWalletLedger returns the filtered ledger entries, newest first
	ListWalletLedger(ctx context.Context, q ListQuery) (query.Page[entity.WalletLedgerEntry], error)
}
