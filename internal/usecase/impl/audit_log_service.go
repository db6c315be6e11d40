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

// auditLogService implements the AuditLogUsecase interface.
type auditLogService struct {
	lister[entity.AuditLog]

	logger *slog.Logger
}

// NewAuditLogService is the constructor for auditLogService.
func NewAuditLogService(
	seeder service.Seeder,
	auditRepo repository.AuditLogRepository,
	logger *slog.Logger,
) usecase.AuditLogUsecase {
	return &auditLogService{
		lister: lister[entity.AuditLog]{
			seeder:  seeder,
			repo:    auditRepo,
			filters: auditLogFilters,
			order:   query.NewestFirst,
		},
		logger: logger,
	}
}

// ListAuditLogs returns the audit rows matching q, newest first.
func (srv *auditLogService) ListAuditLogs(ctx context.Context, q usecase.ListQuery) (query.Page[entity.AuditLog], error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Listing audit logs", slog.Any("filters", q.Filters))

	return srv.list(ctx, q)
}
