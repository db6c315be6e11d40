package impl

import (
	"context"
	"net/url"
	"testing"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/infra/persistence/memory"
	mockService "dashboard/internal/mocks/service"
	"dashboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	sessionRepo repository.SessionRepository
	recorder    *mockService.MockAuditRecorder
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	sessionRepo := memory.NewSessionRepository(loadedStore(t))
	recorder := mockService.NewMockAuditRecorder(t)

	return sessionServiceFixtures{
		service:     NewSessionService(readySeeder(t), sessionRepo, recorder, discardLogger()),
		sessionRepo: sessionRepo,
		recorder:    recorder,
	}
}

func TestSessionService_ListSessions(t *testing.T) {
	fx := createTestSessionService(t)

	page, err := fx.service.ListSessions(context.Background(), usecase.NewListQuery(url.Values{"deviceId": {"dev-2"}}))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ses-2", page.Items[0].ID)
}

func TestSessionService_RevokeSession(t *testing.T) {
	fx := createTestSessionService(t)
	fx.recorder.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(e *service.AuditEvent) bool {
			return e.EntityType == entity.EntityTypeSession && e.EntityID == "ses-1" && e.Action == entity.SessionActionRevoke
		})).
		Return(nil).
		Once()

	ctx := adminContext()

	ack, err := fx.service.RevokeSession(ctx, "ses-1")
	require.NoError(t, err)
	assert.Equal(t, &entity.RevokeAck{Revoked: true, ID: "ses-1", Count: 1}, ack)

	remaining, err := fx.sessionRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	_, err = fx.sessionRepo.FindByID(ctx, "ses-1")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSessionService_RevokeSession_NotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	_, err := fx.service.RevokeSession(ctx, "ses-404")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	remaining, err := fx.sessionRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 3)
}

func TestSessionService_RevokeSession_Twice(t *testing.T) {
	fx := createTestSessionService(t)
	fx.recorder.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()

	ctx := context.Background()

	_, err := fx.service.RevokeSession(ctx, "ses-3")
	require.NoError(t, err)

	_, err = fx.service.RevokeSession(ctx, "ses-3")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSessionService_RevokeUserSessions(t *testing.T) {
	fx := createTestSessionService(t)
	fx.recorder.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(e *service.AuditEvent) bool {
			return e.EntityType == entity.EntityTypeUser && e.EntityID == "user-1" && e.Details["count"] == 2
		})).
		Return(nil).
		Once()

	ctx := context.Background()

	ack, err := fx.service.RevokeUserSessions(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, &entity.RevokeAck{Revoked: true, UserID: "user-1", Count: 2}, ack)

	ack, err = fx.service.RevokeUserSessions(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, &entity.RevokeAck{Revoked: false, UserID: "user-1", Count: 0}, ack)

	remaining, err := fx.sessionRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestSessionService_Validation(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.RevokeSession(context.Background(), "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))

	_, err = fx.service.RevokeUserSessions(context.Background(), "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}
