package sessionstore

import (
	"context"
	"fmt"
	"medrecord-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(id string) *models.QuestionnaireSession {
	now := time.Now().UTC()
	return &models.QuestionnaireSession{
		ID:                  id,
		Stage:               models.SessionStageFirstSubmitted,
		FirstStageResponses: map[string]string{"What brings you in today?": "headache"},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func TestMemorySessionStore_SaveAndFind(t *testing.T) {
	store := NewMemorySessionStore(10, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, newTestSession("user-1")))

	found, err := store.FindSession(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, models.SessionStageFirstSubmitted, found.Stage)
}

func TestMemorySessionStore_MissingSession(t *testing.T) {
	store := NewMemorySessionStore(10, time.Minute)

	found, err := store.FindSession(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemorySessionStore_ReturnsCopies(t *testing.T) {
	store := NewMemorySessionStore(10, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, newTestSession("user-1")))

	first, err := store.FindSession(ctx, "user-1")
	require.NoError(t, err)
	first.Stage = models.SessionStageSecondSubmitted
	first.FirstStageResponses["What brings you in today?"] = "tampered"

	second, err := store.FindSession(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStageFirstSubmitted, second.Stage)
	assert.Equal(t, "headache", second.FirstStageResponses["What brings you in today?"])
}

func TestMemorySessionStore_SaveDetachesCallerState(t *testing.T) {
	store := NewMemorySessionStore(10, time.Minute)
	ctx := context.Background()

	session := newTestSession("user-1")
	require.NoError(t, store.SaveSession(ctx, session))

	// Mutating the caller's session after the save must not reach the store.
	session.FirstStageResponses["What brings you in today?"] = "tampered"

	found, err := store.FindSession(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "headache", found.FirstStageResponses["What brings you in today?"])
}

func TestMemorySessionStore_TTLExpiry(t *testing.T) {
	store := NewMemorySessionStore(10, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, newTestSession("user-1")))
	time.Sleep(20 * time.Millisecond)

	found, err := store.FindSession(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemorySessionStore_CapacityEviction(t *testing.T) {
	store := NewMemorySessionStore(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.SaveSession(ctx, newTestSession(fmt.Sprintf("user-%d", i))))
	}
	// user-0 is the oldest entry, so it is the one closest to expiry.
	require.NoError(t, store.SaveSession(ctx, newTestSession("user-3")))

	evicted, err := store.FindSession(ctx, "user-0")
	require.NoError(t, err)
	assert.Nil(t, evicted)

	kept, err := store.FindSession(ctx, "user-3")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestMemorySessionStore_OverwriteDoesNotEvict(t *testing.T) {
	store := NewMemorySessionStore(2, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, newTestSession("user-0")))
	require.NoError(t, store.SaveSession(ctx, newTestSession("user-1")))

	// Re-saving an existing session must not push anything out.
	updated := newTestSession("user-1")
	updated.Stage = models.SessionStageSecondSubmitted
	require.NoError(t, store.SaveSession(ctx, updated))

	kept, err := store.FindSession(ctx, "user-0")
	require.NoError(t, err)
	assert.NotNil(t, kept)

	found, err := store.FindSession(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, models.SessionStageSecondSubmitted, found.Stage)
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore(10, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, newTestSession("user-1")))
	require.NoError(t, store.DeleteSession(ctx, "user-1"))

	found, err := store.FindSession(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, found)
}
