package impl

import (
	"context"
	"fmt"
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

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	lister[entity.Session]

	sessionRepo repository.SessionRepository
	recorder    service.AuditRecorder
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	seeder service.Seeder,
	sessionRepo repository.SessionRepository,
	recorder service.AuditRecorder,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		lister: lister[entity.Session]{
			seeder:  seeder,
			repo:    sessionRepo,
			filters: sessionFilters,
			order:   query.InsertionOrder,
		},
		sessionRepo: sessionRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSessions returns the sessions matching q in insertion order.
func (srv *sessionService) ListSessions(ctx context.Context, q usecase.ListQuery) (query.Page[entity.Session], error) {
	srv.log(ctx).Debug("Listing sessions", slog.Any("filters", q.Filters))

	return srv.list(ctx, q)
}

// RevokeSession permanently removes one session.
func (srv *sessionService) RevokeSession(ctx context.Context, id string) (*entity.RevokeAck, error) {
	srv.log(ctx).Debug("Revoking session", slog.String("session_id", id))

	if id == "" {
		return nil, errors.WithStack(domainerrors.ErrValidation.WithDetails("session id is required"))
	}
	if err := srv.seeder.EnsureSeeded(ctx); err != nil {
		return nil, errors.Wrap(err, "ensure seeded")
	}

	removed, err := srv.sessionRepo.RemoveByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "remove session")
	}
	if !removed {
		return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("session %q", id)))
	}

	recordAudit(ctx, srv.recorder, srv.log(ctx), &service.AuditEvent{
		EntityType: entity.EntityTypeSession,
		EntityID:   id,
		Action:     entity.SessionActionRevoke,
	})

	srv.log(ctx).Info("Session revoked", slog.String("session_id", id))

	return &entity.RevokeAck{Revoked: true, ID: id, Count: 1}, nil
}

// RevokeUserSessions removes every session of a user. A user without
// sessions is acknowledged with a zero count.
func (srv *sessionService) RevokeUserSessions(ctx context.Context, userID string) (*entity.RevokeAck, error) {
	srv.log(ctx).Debug("Revoking all sessions", slog.String("user_id", userID))

	if userID == "" {
		return nil, errors.WithStack(domainerrors.ErrValidation.WithDetails("user id is required"))
	}
	if err := srv.seeder.EnsureSeeded(ctx); err != nil {
		return nil, errors.Wrap(err, "ensure seeded")
	}

	count, err := srv.sessionRepo.RemoveByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "remove user sessions")
	}

	if count > 0 {
		recordAudit(ctx, srv.recorder, srv.log(ctx), &service.AuditEvent{
			EntityType: entity.EntityTypeUser,
			EntityID:   userID,
			Action:     entity.SessionActionRevokeAll,
			Details:    map[string]any{"count": count},
		})
	}

	srv.log(ctx).Info("User sessions revoked", slog.String("user_id", userID), slog.Int("count", count))

	return &entity.RevokeAck{Revoked: count > 0, UserID: userID, Count: count}, nil
}
