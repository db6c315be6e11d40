// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/query"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/usecase"

	"github.com/pkg/errors"
)

// Recognized list parameters per resource.
var (
	deviceFilters = query.NewFilterSet(
		query.String("userId", func(d entity.Device) string { return d.UserID }),
		query.String("platform", func(d entity.Device) string { return d.Platform }),
		query.Int("trustScore", func(d entity.Device) int64 { return int64(d.TrustScore) }),
	)

	sessionFilters = query.NewFilterSet(
		query.String("userId", func(s entity.Session) string { return s.UserID }),
		query.String("deviceId", func(s entity.Session) string { return s.DeviceID }),
	)

	securityEventFilters = query.NewFilterSet(
		query.String("type", func(e entity.SecurityEvent) string { return e.Type }),
		query.String("severity", func(e entity.SecurityEvent) string { return e.Severity }),
		query.String("userId", func(e entity.SecurityEvent) string { return e.UserID }),
	).WithDateRange()

	auditLogFilters = query.NewFilterSet(
		query.String("action", func(a entity.AuditLog) string { return a.Action }),
		query.String("entityType", func(a entity.AuditLog) string { return a.EntityType }),
		query.String("entityId", func(a entity.AuditLog) string { return a.EntityID }),
		query.String("actorId", func(a entity.AuditLog) string { return a.ActorID }),
	).WithDateRange()

	walletLedgerFilters = query.NewFilterSet(
		query.String("userId", func(w entity.WalletLedgerEntry) string { return w.UserID }),
		query.String("type", func(w entity.WalletLedgerEntry) string { return w.Type }),
		query.Int("amount", func(w entity.WalletLedgerEntry) int64 { return w.Amount }),
	).WithDateRange()
)

// lister runs the shared read pipeline for one collection.
type lister[T entity.Record] struct {
	seeder  service.Seeder
	repo    repository.Reader[T]
	filters *query.FilterSet[T]
	order   query.Order
}

func (l lister[T]) list(ctx context.Context, q usecase.ListQuery) (query.Page[T], error) {
	pred, err := l.filters.Compose(q.Filters)
	if err != nil {
		if errors.Is(err, query.ErrInvalidDate) || errors.Is(err, query.ErrInvalidFilter) {
			return query.Page[T]{}, errors.WithStack(domainerrors.ErrValidation.WithDetails(err.Error()))
		}

		return query.Page[T]{}, errors.Wrap(err, "compose filters")
	}

	if err := l.seeder.EnsureSeeded(ctx); err != nil {
		return query.Page[T]{}, errors.Wrap(err, "ensure seeded")
	}

	items, err := l.repo.List(ctx)
	if err != nil {
		return query.Page[T]{}, errors.Wrap(err, "list records")
	}

	return query.Select(items, pred, l.order, q.Page), nil
}

// recordAudit appends an audit row for a mutation that has already been
// applied. Failures are logged; the mutation stays visible either way.
func recordAudit(ctx context.Context, recorder service.AuditRecorder, logger *slog.Logger, event *service.AuditEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if admin := deliverycontext.GetAdminSession(ctx); admin != nil {
		event.ActorID = admin.UserID
	}

	if err := recorder.Record(ctx, event); err != nil {
		logger.Error("Failed to record audit log",
			slog.String("entity_type", event.EntityType),
			slog.String("entity_id", event.EntityID),
			slog.String("action", event.Action),
			slog.Any("error", err),
		)
	}
}
