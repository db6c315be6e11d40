package repository

import (
	"context"

	"dashboard/internal/domain/entity"
)

// Dataset is a full set of records for every collection, used to seed the store.
type Dataset struct {
	Devices        []entity.Device            `yaml:"devices"`
	Sessions       []entity.Session           `yaml:"sessions"`
	SecurityEvents []entity.SecurityEvent     `yaml:"securityEvents"`
	AuditLogs      []entity.AuditLog          `yaml:"auditLogs"`
	WalletLedger   []entity.WalletLedgerEntry `yaml:"walletLedger"`
}

// Size returns the total number of records across all collections.
func (d Dataset) Size() int {
	return len(d.Devices) + len(d.Sessions) + len(d.SecurityEvents) + len(d.AuditLogs) + len(d.WalletLedger)
}

// StoreManager controls the lifecycle of the whole store rather than a single collection.
type StoreManager interface {
	// IsEmpty reports whether every collection is empty.
	IsEmpty(ctx context.Context) (bool, error)

	// Load appends dataset to the store. Load is all-or-nothing: if any record
	// is rejected, none of the dataset is kept.
	Load(ctx context.Context, dataset Dataset) error

	// Clear removes every record from every collection.
	Clear(ctx context.Context) error
}
