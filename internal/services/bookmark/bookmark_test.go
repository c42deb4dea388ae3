package bookmark

import (
	"context"
	"testing"

	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/services/catalog"
	"campusHub/internal/session"
	"campusHub/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	log := slogdiscard.NewDiscardLogger()
	store := memory.New()
	defer store.Close()

	events := catalog.New(log, store)
	_, err := events.SeedIfEmpty(ctx)
	require.NoError(t, err)

	svc := New(log, store, events)
	sess := &session.Session{UserID: "u1"}

	for _, id := range []string{"3", "1", "2"} {
		on, err := svc.Toggle(ctx, sess, id)
		require.NoError(t, err)
		assert.True(t, on)
	}

	off, err := svc.Toggle(ctx, sess, "2")
	require.NoError(t, err)
	assert.False(t, off)

	require.NoError(t, store.Remove(ctx, catalog.EventPath("3")))

	list, err := svc.List(ctx, sess)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].ID)

	_, err = svc.Toggle(ctx, sess, "missing")
	assert.ErrorIs(t, err, catalog.ErrEventNotFound)

	_, err = svc.List(ctx, nil)
	assert.ErrorIs(t, err, session.ErrAuthRequired)

	_, err = svc.Toggle(ctx, nil, "1")
	assert.ErrorIs(t, err, session.ErrAuthRequired)
}
