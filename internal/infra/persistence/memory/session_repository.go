package memory

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	reader[entity.Session]
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepository{reader: reader[entity.Session]{c: store.sessions}}
}

// RemoveByID deletes the session with the given id.
func (repo *sessionRepository) RemoveByID(_ context.Context, id string) (bool, error) {
	return repo.c.RemoveByID(id), nil
}

// RemoveByUserID deletes every session owned by userID.
func (repo *sessionRepository) RemoveByUserID(_ context.Context, userID string) (int, error) {
	return repo.c.RemoveFunc(func(session entity.Session) bool {
		return session.UserID == userID
	}), nil
}
