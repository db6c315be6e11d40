// Package audit appends audit log rows for mutations applied by the use cases.
package audit

import (
	"context"
	"log/slog"
	"maps"
	"time"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeRecorder writes audit events into the audit log collection.
type storeRecorder struct {
	repo   repository.AuditLogRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewStoreRecorder creates an AuditRecorder backed by the audit log repository.
func NewStoreRecorder(repo repository.AuditLogRepository, logger *slog.Logger) service.AuditRecorder {
	return &storeRecorder{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Record appends event as a new audit log row.
func (r *storeRecorder) Record(ctx context.Context, event *service.AuditEvent) error {
	if event == nil {
		return errors.New("audit event is nil")
	}
	if event.EntityType == "" || event.EntityID == "" || event.Action == "" {
		return errors.Errorf("incomplete audit event: type=%q id=%q action=%q",
			event.EntityType, event.EntityID, event.Action)
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = r.now()
	}

	row := entity.AuditLog{
		ID:         "audit-" + uuid.New().String(),
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		ActorID:    event.ActorID,
		RequestID:  event.RequestID,
		CreatedAt:  occurredAt.UTC(),
	}
	if len(event.Details) > 0 {
		row.Attributes = entity.Attributes(maps.Clone(event.Details))
	}

	if err := r.repo.Append(ctx, row); err != nil {
		return errors.Wrap(err, "append audit log")
	}

	r.logger.Debug("Audit log recorded",
		slog.String("audit_id", row.ID),
		slog.String("entity_type", row.EntityType),
		slog.String("entity_id", row.EntityID),
		slog.String("action", row.Action),
	)

	return nil
}

// Module provides the audit recorder FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStoreRecorder),
)
