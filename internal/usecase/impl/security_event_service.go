package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/query"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// securityEventService implements the SecurityEventUsecase interface.
type securityEventService struct {
	lister[entity.SecurityEvent]

	eventRepo repository.SecurityEventRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewSecurityEventService is the constructor for securityEventService.
func NewSecurityEventService(
	seeder service.Seeder,
	eventRepo repository.SecurityEventRepository,
	logger *slog.Logger,
) usecase.SecurityEventUsecase {
	return &securityEventService{
		lister: lister[entity.SecurityEvent]{
			seeder:  seeder,
			repo:    eventRepo,
			filters: securityEventFilters,
			order:   query.NewestFirst,
		},
		eventRepo: eventRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *securityEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSecurityEvents returns the events matching q, newest first.
func (srv *securityEventService) ListSecurityEvents(ctx context.Context, q usecase.ListQuery) (query.Page[entity.SecurityEvent], error) {
	srv.log(ctx).Debug("Listing security events", slog.Any("filters", q.Filters))

	return srv.list(ctx, q)
}

// CreateSecurityEvent appends a new event stamped with a fresh id and the current time.
func (srv *securityEventService) CreateSecurityEvent(ctx context.Context, input *usecase.SecurityEventInput) (*entity.SecurityEvent, error) {
	if input == nil || input.Type == "" || input.Severity == "" {
		return nil, errors.WithStack(domainerrors.ErrValidation.WithDetails("type and severity are required"))
	}
	if err := srv.seeder.EnsureSeeded(ctx); err != nil {
		return nil, errors.Wrap(err, "ensure seeded")
	}

	event := entity.SecurityEvent{
		ID:          "evt-" + uuid.New().String(),
		Type:        input.Type,
		Severity:    input.Severity,
		UserID:      input.UserID,
		Description: input.Description,
		CreatedAt:   srv.now().UTC(),
		Attributes:  entity.CloneAttributes(input.Attributes),
	}

	if err := srv.eventRepo.Append(ctx, event); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, errors.WithStack(domainerrors.ErrConflict.WithDetails(event.ID))
		}

		return nil, errors.Wrap(err, "append security event")
	}

	srv.log(ctx).Info("Security event created",
		slog.String("event_id", event.ID),
		slog.String("type", event.Type),
		slog.String("severity", event.Severity),
	)

	return &event, nil
}
