// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/query"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	ListSessions(ctx context.Context, q ListQuery) (query.Page[entity.Session], error)
	RevokeSession(ctx context.Context, id string) (*entity.RevokeAck, error)
	RevokeUserSessions(ctx context.Context, userID string) (*entity.RevokeAck, error)
}
