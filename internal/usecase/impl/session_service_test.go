package impl

import (
	"context"
	"testing"
	"time"

	"kampina/internal/domain/entity"
	"kampina/internal/domain/repository"
	mockRepo "kampina/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sessionTestNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func createTestSessionService(t *testing.T) (*sessionService, *mockRepo.MockSessionStore) {
	store := mockRepo.NewMockSessionStore(t)
	srv := NewSessionService(SessionServiceParams{
		Store:  store,
		Config: newTestConfig(),
		Logger: newDiscardLogger(),
	}).(*sessionService)
	srv.now = func() time.Time { return sessionTestNow }

	ids := []string{"id-1", "id-2", "id-3"}
	srv.newID = func() (string, error) {
		id := ids[0]
		ids = ids[1:]

		return id, nil
	}

	return srv, store
}

func TestSessionService_Load_EmptyIDStartsNewSession(t *testing.T) {
	srv, _ := createTestSessionService(t)

	session, err := srv.Load(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "id-1", session.ID)
	assert.True(t, session.IsNew())
	assert.False(t, session.Modified())
	assert.Equal(t, sessionTestNow.Add(7*24*time.Hour), session.ExpiresAt)
}

func TestSessionService_Load_UnknownIDStartsNewSession(t *testing.T) {
	srv, store := createTestSessionService(t)
	store.EXPECT().Get(mock.Anything, "stale").Return(nil, repository.ErrSessionNotFound)

	session, err := srv.Load(context.Background(), "stale")

	require.NoError(t, err)
	assert.Equal(t, "id-1", session.ID)
}

func TestSessionService_Load_ExpiredSessionIsReplaced(t *testing.T) {
	srv, store := createTestSessionService(t)
	expired := &entity.Session{ID: "old", ExpiresAt: sessionTestNow.Add(-time.Second)}
	store.EXPECT().Get(mock.Anything, "old").Return(expired, nil)

	session, err := srv.Load(context.Background(), "old")

	require.NoError(t, err)
	assert.Equal(t, "id-1", session.ID)
}

func TestSessionService_Load_SlidesWindow(t *testing.T) {
	srv, store := createTestSessionService(t)

	fresh := &entity.Session{ID: "fresh", ExpiresAt: sessionTestNow.Add(time.Hour), TouchedAt: sessionTestNow.Add(-time.Hour)}
	stale := &entity.Session{ID: "stale", ExpiresAt: sessionTestNow.Add(time.Hour), TouchedAt: sessionTestNow.Add(-25 * time.Hour)}
	store.EXPECT().Get(mock.Anything, "fresh").Return(fresh, nil)
	store.EXPECT().Get(mock.Anything, "stale").Return(stale, nil)

	got, err := srv.Load(context.Background(), "fresh")
	require.NoError(t, err)
	assert.False(t, got.Modified())
	assert.Equal(t, sessionTestNow.Add(time.Hour), got.ExpiresAt)

	got, err = srv.Load(context.Background(), "stale")
	require.NoError(t, err)
	assert.True(t, got.Modified())
	assert.Equal(t, sessionTestNow.Add(7*24*time.Hour), got.ExpiresAt)
}

func TestSessionService_Load_StoreFailure(t *testing.T) {
	srv, store := createTestSessionService(t)
	store.EXPECT().Get(mock.Anything, "x").Return(nil, errors.New("redis down"))

	_, err := srv.Load(context.Background(), "x")

	assert.Error(t, err)
}

func TestSessionService_Save_OnlyWhenModified(t *testing.T) {
	srv, store := createTestSessionService(t)
	session := entity.NewSession("s", sessionTestNow, time.Hour)

	require.NoError(t, srv.Save(context.Background(), session))

	session.AddFlash(entity.FlashSuccess, "hi")
	store.EXPECT().Save(mock.Anything, session).Return(nil).Once()

	require.NoError(t, srv.Save(context.Background(), session))
	assert.False(t, session.Modified())
	assert.False(t, session.IsNew())
}

func TestSessionService_Rotate_KeepsStateAndDropsOldID(t *testing.T) {
	srv, store := createTestSessionService(t)
	userID := uuid.New()

	old := entity.NewSession("old", sessionTestNow, time.Hour)
	old.MarkSaved()
	old.SetReturnTo("/campgrounds/new")
	old.AddFlash(entity.FlashError, "oops")
	old.Login(userID)

	store.EXPECT().Delete(mock.Anything, "old").Return(nil)

	rotated, err := srv.Rotate(context.Background(), old)

	require.NoError(t, err)
	assert.Equal(t, "id-1", rotated.ID)
	assert.Equal(t, "/campgrounds/new", rotated.ReturnTo)
	assert.Equal(t, []string{"oops"}, rotated.Flashes[entity.FlashError])
	require.True(t, rotated.IsAuthenticated())
	assert.Equal(t, userID, *rotated.UserID)
	assert.True(t, rotated.Modified())
}

func TestSessionService_Rotate_NewSessionSkipsDelete(t *testing.T) {
	srv, _ := createTestSessionService(t)
	fresh := entity.NewSession("fresh", sessionTestNow, time.Hour)

	rotated, err := srv.Rotate(context.Background(), fresh)

	require.NoError(t, err)
	assert.Equal(t, "id-1", rotated.ID)
}

func TestNewSessionID(t *testing.T) {
	a, err := newSessionID()
	require.NoError(t, err)
	b, err := newSessionID()
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}
