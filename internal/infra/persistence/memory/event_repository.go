package memory

import (
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
)

// NewSecurityEventRepository returns the append-only security event collection.
func NewSecurityEventRepository(store *Store) repository.SecurityEventRepository {
	return &reader[entity.SecurityEvent]{c: store.securityEvents}
}

// NewAuditLogRepository returns the append-only audit log collection.
func NewAuditLogRepository(store *Store) repository.AuditLogRepository {
	return &reader[entity.AuditLog]{c: store.auditLogs}
}

// NewWalletLedgerRepository returns the append-only wallet ledger collection.
func NewWalletLedgerRepository(store *Store) repository.WalletLedgerRepository {
	return &reader[entity.WalletLedgerEntry]{c: store.walletLedger}
}
