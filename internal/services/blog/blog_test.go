package blog

import (
	"context"
	"testing"

	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/services/profile"
	"campusHub/internal/session"
	"campusHub/internal/storage"
	"campusHub/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *profile.Service, storage.Store) {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()
	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })

	profiles := profile.New(log, store)

	return New(log, store, profiles), profiles, store
}

func TestCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, profiles, _ := newService(t)

	sess := &session.Session{UserID: "u1", Name: "Provider Name"}
	_, _, err := profiles.Ensure(ctx, sess, profile.SignUp{Name: "Alice"})
	require.NoError(t, err)

	post, err := svc.Create(ctx, sess, " Hello ", "First post")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "u1", post.AuthorID)
	assert.Equal(t, "Alice", post.AuthorName)
	assert.Equal(t, "Hello", post.Title)
	assert.Greater(t, post.Timestamp, int64(0))
}

func TestCreateAuthorNameFallbacks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newService(t)

	post, err := svc.Create(ctx, &session.Session{UserID: "u1", Name: "Provider Name"}, "t", "c")
	require.NoError(t, err)
	assert.Equal(t, "Provider Name", post.AuthorName)

	post, err = svc.Create(ctx, &session.Session{UserID: "u2"}, "t", "c")
	require.NoError(t, err)
	assert.Equal(t, DefaultAuthorName, post.AuthorName)
}

func TestCreateErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, store := newService(t)

	_, err := svc.Create(ctx, nil, "t", "c")
	assert.ErrorIs(t, err, session.ErrAuthRequired)

	_, err = svc.Create(ctx, &session.Session{UserID: "u1"}, "  ", "c")
	assert.ErrorIs(t, err, ErrEmptyPost)

	_, err = svc.Create(ctx, &session.Session{UserID: "u1"}, "t", "")
	assert.ErrorIs(t, err, ErrEmptyPost)

	snap, err := store.Get(ctx, "blogs")
	require.NoError(t, err)
	assert.False(t, snap.Exists())
}

func TestListIsMostRecentFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newService(t)
	sess := &session.Session{UserID: "u1"}

	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		post, err := svc.Create(ctx, sess, title, "body")
		require.NoError(t, err)
		ids = append(ids, post.ID)
	}

	posts, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, posts, 3)

	for i := 1; i < len(posts); i++ {
		assert.Greater(t, posts[i-1].Timestamp, posts[i].Timestamp)
	}
	assert.Equal(t, ids[2], posts[0].ID)
	assert.Equal(t, ids[0], posts[2].ID)

	posts, err = svc.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newService(t)
	owner := &session.Session{UserID: "u1"}

	post, err := svc.Create(ctx, owner, "t", "c")
	require.NoError(t, err)

	err = svc.Delete(ctx, owner, post.ID, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	err = svc.Delete(ctx, nil, post.ID, true)
	assert.ErrorIs(t, err, session.ErrAuthRequired)

	// another user only reaches their own subtree
	err = svc.Delete(ctx, &session.Session{UserID: "u2"}, post.ID, true)
	assert.ErrorIs(t, err, ErrPostNotFound)

	require.NoError(t, svc.Delete(ctx, owner, post.ID, true))

	posts, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, posts)

	err = svc.Delete(ctx, owner, post.ID, true)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestByUsername(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, profiles, _ := newService(t)
	sess := &session.Session{UserID: "u1", Name: "Alice"}

	_, _, err := profiles.Ensure(ctx, sess, profile.SignUp{Username: "alice"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, sess, "t", "c")
	require.NoError(t, err)

	got, err := svc.ByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.Author.ID)
	assert.Len(t, got.Posts, 1)

	_, err = svc.ByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}
