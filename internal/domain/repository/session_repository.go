package repository

import (
	"context"

	"dashboard/internal/domain/entity"
)

// SessionRepository defines the operations on the session collection.
type SessionRepository interface {
	Reader[entity.Session]
	Appender[entity.Session]

	// RemoveByID deletes the session with the given id. It reports false when
	// no such session exists. Remaining sessions keep their relative order.
	RemoveByID(ctx context.Context, id string) (bool, error)

	// RemoveByUserID deletes every session owned by userID and returns how many were removed.
	RemoveByUserID(ctx context.Context, userID string) (int, error)
}
