package repository

import "dashboard/internal/domain/entity"

// SecurityEventRepository stores append-only security events.
type SecurityEventRepository interface {
	Reader[entity.SecurityEvent]
	Appender[entity.SecurityEvent]
}

// AuditLogRepository stores append-only audit records.
type AuditLogRepository interface {
	Reader[entity.AuditLog]
	Appender[entity.AuditLog]
}

// WalletLedgerRepository stores append-only wallet ledger entries.
type WalletLedgerRepository interface {
	Reader[entity.WalletLedgerEntry]
	Appender[entity.WalletLedgerEntry]
}
