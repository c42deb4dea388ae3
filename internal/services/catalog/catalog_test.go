package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/session"
	"campusHub/internal/storage"
	"campusHub/internal/storage/memory"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, storage.Store) {
	t.Helper()

	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })

	return New(slogdiscard.NewDiscardLogger(), store), store
}

func TestSeedIfEmptyRunsOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	seeded, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	events, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, events, len(sampleEvents))

	seeded, err = svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	events, err = svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, events, len(sampleEvents))
}

func TestSeedDoesNotOverwriteUserEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Create(ctx, &session.Session{UserID: "u1"}, EventInput{
		Title: "Mine", Description: "d", Date: "2026-12-01", Time: "1 PM", Location: "Here",
	})
	require.NoError(t, err)

	seeded, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	events, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Mine", events[0].Title)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	sess := &session.Session{UserID: "u1", Name: "Alice"}
	event, err := svc.Create(ctx, sess, EventInput{
		Title:       "  Demo ",
		Description: "A demo event",
		Date:        "2026-11-20",
		Time:        "5 PM",
		Location:    "Room 1",
		Tags:        []string{" Tech ", "", "AI"},
		Capacity:    2,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Demo", event.Title)
	assert.Equal(t, DefaultImage, event.Image)
	assert.Equal(t, []string{"Tech", "AI"}, event.Tags)
	assert.Equal(t, "Alice", event.Organizer)
	assert.Equal(t, "u1", event.OrganizerID)
	assert.True(t, event.IsRegistered("u1"))

	stored, err := svc.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event, stored)
}

func TestCreateFallsBackOrganizerName(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)

	event, err := svc.Create(context.Background(), &session.Session{UserID: "u1"}, EventInput{
		Title: "Demo", Description: "d", Date: "2026-11-20", Time: "5 PM", Location: "Room 1",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultOrganizer, event.Organizer)
}

func TestCreateErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)

	_, err := svc.Create(ctx, nil, EventInput{Title: "Demo"})
	assert.ErrorIs(t, err, session.ErrAuthRequired)

	_, err = svc.Create(ctx, &session.Session{UserID: "u1"}, EventInput{Title: "Demo", Date: "2026-11-20"})
	var validateErr validator.ValidationErrors
	assert.True(t, errors.As(err, &validateErr))

	snap, err := store.Get(ctx, eventsPath)
	require.NoError(t, err)
	assert.False(t, snap.Exists())
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = svc.Get(ctx, "bad.id")
	assert.ErrorIs(t, err, ErrEventNotFound)

	require.NoError(t, store.Set(ctx, "events/broken", map[string]any{"title": "No date"}))
	_, err = svc.Get(ctx, "broken")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)
	svc.now = func() time.Time { return time.Date(2026, 11, 3, 15, 0, 0, 0, time.UTC) }

	_, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "events/broken", map[string]any{"title": "No date"}))

	from, err := svc.ParseFrom("today")
	require.NoError(t, err)

	testCases := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{
			name:    "All ascending",
			filter:  Filter{},
			wantIDs: []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:    "Descending",
			filter:  Filter{Order: OrderDesc},
			wantIDs: []string{"6", "5", "4", "3", "2", "1"},
		},
		{
			name:    "From today with limit",
			filter:  Filter{From: from, Limit: 2},
			wantIDs: []string{"4", "5"},
		},
		{
			name:    "Tag",
			filter:  Filter{Tag: "ai"},
			wantIDs: []string{"1"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			events, err := svc.List(ctx, tc.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(events))
			for _, e := range events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestListTiesBrokenByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)

	for _, id := range []string{"b", "c", "a"} {
		require.NoError(t, store.Set(ctx, EventPath(id), map[string]any{"title": id, "date": "2026-12-01"}))
	}

	events, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
	assert.Equal(t, "c", events[2].ID)
}

func TestParseFrom(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)

	from, err := svc.ParseFrom("")
	require.NoError(t, err)
	assert.True(t, from.IsZero())

	from, err = svc.ParseFrom("2026-11-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC), from)

	_, err = svc.ParseFrom("tomorrow")
	assert.Error(t, err)
}
