package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) storage.Store {
	t.Helper()

	s, err := InitDB(context.Background(), ":memory:", slogdiscard.NewDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSetGetUpdateRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "events/e_1", map[string]any{
		"title":     "Demo",
		"tags":      []string{"x"},
		"attendees": map[string]any{"u1": true},
	}))
	require.NoError(t, s.Set(ctx, "events/e11", map[string]any{"title": "Other"}))

	snap, err := s.Get(ctx, "events/e_1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Demo","tags":["x"],"attendees":{"u1":true}}`, string(snap.Value))

	require.NoError(t, s.Update(ctx, "events/e_1", map[string]any{"title": "Renamed", "tags": nil}))
	snap, err = s.Get(ctx, "events/e_1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Renamed","attendees":{"u1":true}}`, string(snap.Value))

	require.NoError(t, s.Remove(ctx, "events/e_1"))
	snap, err = s.Get(ctx, "events/e_1")
	require.NoError(t, err)
	assert.False(t, snap.Exists())

	snap, err = s.Get(ctx, "events")
	require.NoError(t, err)
	assert.JSONEq(t, `{"e11":{"title":"Other"}}`, string(snap.Value))
}

func TestToggleTwiceRestoresState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "events/e1", map[string]any{"title": "Demo"}))

	present, err := s.Toggle(ctx, "events/e1/attendees/u1", true)
	require.NoError(t, err)
	assert.True(t, present)

	snap, err := s.Get(ctx, "events/e1/attendees")
	require.NoError(t, err)
	assert.JSONEq(t, `{"u1":true}`, string(snap.Value))

	present, err = s.Toggle(ctx, "events/e1/attendees/u1", true)
	require.NoError(t, err)
	assert.False(t, present)

	snap, err = s.Get(ctx, "events/e1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Demo"}`, string(snap.Value))
}

func TestSetIfAbsent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	ok, err := s.SetIfAbsent(ctx, "events", map[string]any{"e1": map[string]any{"title": "A"}})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.SetIfAbsent(ctx, "events", map[string]any{"e2": map[string]any{"title": "B"}})
	require.NoError(t, err)
	assert.False(t, ok)

	snap, err := s.Get(ctx, "events")
	require.NoError(t, err)
	assert.JSONEq(t, `{"e1":{"title":"A"}}`, string(snap.Value))
}

func TestConcurrentToggles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	const users = 20

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Toggle(ctx, fmt.Sprintf("events/e1/attendees/u%d", i), true)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	var attendees map[string]bool
	snap, err := s.Get(ctx, "events/e1/attendees")
	require.NoError(t, err)
	require.NoError(t, snap.Decode(&attendees))
	assert.Len(t, attendees, users)
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	got := make(chan storage.Snapshot, 10)
	sub, err := s.Subscribe("events/e1", func(snap storage.Snapshot) { got <- snap })
	require.NoError(t, err)
	defer sub.Cancel()

	first := next(t, got)
	assert.False(t, first.Exists())

	require.NoError(t, s.Set(ctx, "events/e1/title", "Demo"))

	second := next(t, got)
	assert.JSONEq(t, `{"title":"Demo"}`, string(second.Value))
}

func TestFileDatabaseSurvivesReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "campushub.db")

	s, err := InitDB(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "usernames/alice", "u1"))
	require.NoError(t, s.Close())

	s, err = InitDB(ctx, path, nil)
	require.NoError(t, err)
	defer s.Close()

	snap, err := s.Get(ctx, "usernames/alice")
	require.NoError(t, err)
	assert.JSONEq(t, `"u1"`, string(snap.Value))
}

func next(t *testing.T, ch <-chan storage.Snapshot) storage.Snapshot {
	t.Helper()

	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return storage.Snapshot{}
	}
}

func TestUpdateRejectsOverlappingChildren(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "a", map[string]any{"x": 1}))

	err := s.Update(ctx, "", map[string]any{"a": map[string]any{"x": 1}, "a/b": 2})
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	snap, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, string(snap.Value))
}
