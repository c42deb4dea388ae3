package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"campusHub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	defer s.Close()

	require.NoError(t, s.Set(ctx, "events/e1", map[string]any{
		"title":     "Demo",
		"attendees": map[string]any{"u1": true},
	}))

	snap, err := s.Get(ctx, "events/e1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Demo","attendees":{"u1":true}}`, string(snap.Value))

	snap, err = s.Get(ctx, "events/e1/title")
	require.NoError(t, err)
	assert.JSONEq(t, `"Demo"`, string(snap.Value))

	require.NoError(t, s.Set(ctx, "events/e1", map[string]any{"title": "Renamed"}))
	snap, err = s.Get(ctx, "events/e1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Renamed"}`, string(snap.Value))

	require.NoError(t, s.Remove(ctx, "events/e1"))
	snap, err = s.Get(ctx, "events/e1")
	require.NoError(t, err)
	assert.False(t, snap.Exists())

	require.NoError(t, s.Remove(ctx, "events/missing"))
}

func TestUpdateIsPartial(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	defer s.Close()

	require.NoError(t, s.Set(ctx, "users/u1", map[string]any{"name": "Alice", "year": 1}))
	require.NoError(t, s.Update(ctx, "users/u1", map[string]any{"year": 2, "bio": "hi"}))
	require.NoError(t, s.Update(ctx, "", map[string]any{
		"usernames/alice": "u1",
		"users/u1/bio":    nil,
	}))

	snap, err := s.Get(ctx, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"users":{"u1":{"name":"Alice","year":2}},"usernames":{"alice":"u1"}}`, string(snap.Value))
}

func TestEmptyObjectsVanish(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	defer s.Close()

	require.NoError(t, s.Set(ctx, "events/e1", map[string]any{"title": "Demo", "attendees": map[string]bool{}}))

	snap, err := s.Get(ctx, "events/e1/attendees")
	require.NoError(t, err)
	assert.False(t, snap.Exists())
}

func TestToggleTwiceRestoresState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	defer s.Close()

	require.NoError(t, s.Set(ctx, "events/e1", map[string]any{"title": "Demo"}))
	before, err := s.Get(ctx, "events/e1")
	require.NoError(t, err)

	present, err := s.Toggle(ctx, "events/e1/attendees/u1", true)
	require.NoError(t, err)
	assert.True(t, present)

	present, err = s.Toggle(ctx, "events/e1/attendees/u1", true)
	require.NoError(t, err)
	assert.False(t, present)

	after, err := s.Get(ctx, "events/e1")
	require.NoError(t, err)
	assert.JSONEq(t, string(before.Value), string(after.Value))
}

func TestSetIfAbsent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	defer s.Close()

	ok, err := s.SetIfAbsent(ctx, "usernames/alice", "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.SetIfAbsent(ctx, "usernames/alice", "u2")
	require.NoError(t, err)
	assert.False(t, ok)

	snap, err := s.Get(ctx, "usernames/alice")
	require.NoError(t, err)
	assert.JSONEq(t, `"u1"`, string(snap.Value))
}

func TestServerTimestampIsStoreAssigned(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	defer s.Close()

	require.NoError(t, s.Set(ctx, "blogs/u1/p1", map[string]any{"timestamp": storage.ServerTimestamp}))
	require.NoError(t, s.Set(ctx, "blogs/u1/p2", map[string]any{"timestamp": storage.ServerTimestamp}))

	var p1, p2 struct {
		Timestamp int64 `json:"timestamp"`
	}
	snap, err := s.Get(ctx, "blogs/u1/p1")
	require.NoError(t, err)
	require.NoError(t, snap.Decode(&p1))
	snap, err = s.Get(ctx, "blogs/u1/p2")
	require.NoError(t, err)
	require.NoError(t, snap.Decode(&p2))

	assert.Greater(t, p1.Timestamp, int64(0))
	assert.Greater(t, p2.Timestamp, p1.Timestamp)
}

func TestConcurrentTogglesOnDistinctKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	defer s.Close()

	const users = 50

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

func TestSubscribeSeesCommittedWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	defer s.Close()

	got := make(chan storage.Snapshot, 10)
	sub, err := s.Subscribe("events/e1", func(snap storage.Snapshot) { got <- snap })
	require.NoError(t, err)
	defer sub.Cancel()

	first := next(t, got)
	assert.False(t, first.Exists())

	_, err = s.Toggle(ctx, "events/e1/attendees/u1", true)
	require.NoError(t, err)

	second := next(t, got)
	assert.JSONEq(t, `{"attendees":{"u1":true}}`, string(second.Value))
}

func TestInvalidPath(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	defer s.Close()

	_, err := s.Get(ctx, "events/a.b")
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	err = s.Set(ctx, "events//x", 1)
	assert.ErrorIs(t, err, storage.ErrInvalidPath)
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
	s := New()
	defer s.Close()

	require.NoError(t, s.Set(ctx, "a", map[string]any{"x": 1}))

	err := s.Update(ctx, "", map[string]any{"a": map[string]any{"x": 1}, "a/b": 2})
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	err = s.Update(ctx, "a", map[string]any{"b": 2, "b/": 3})
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	snap, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, string(snap.Value))
}
