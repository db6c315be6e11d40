package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/query"
)

// AuditLogUsecase defines the interface for reading the audit log
type AuditLogUsecase interface {
	// ListAuditLogs returns the filtered audit rows, newest first
	ListAuditLogs(ctx context.Context, q ListQuery) (query.Page[entity.AuditLog], error)
}
