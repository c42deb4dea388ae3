package profile

import (
	"context"
	"testing"

	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/models"
	"campusHub/internal/session"
	"campusHub/internal/storage"
	"campusHub/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, storage.Store) {
	t.Helper()

	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })

	return New(slogdiscard.NewDiscardLogger(), store), store
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestEnsureCreatesOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)
	sess := &session.Session{UserID: "u1", Name: "Alice Smith", Email: "alice@campus.edu"}

	user, created, err := svc.Ensure(ctx, sess, SignUp{Username: "AliceS"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, &models.User{
		ID:       "u1",
		Name:     "Alice Smith",
		Email:    "alice@campus.edu",
		Avatar:   "https://placehold.co/128x128.png?text=A",
		Username: "alices",
		Year:     1,
	}, user)

	again, created, err := svc.Ensure(ctx, sess, SignUp{Name: "Someone Else"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user, again)
}

func TestEnsureErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	_, _, err := svc.Ensure(ctx, nil, SignUp{})
	assert.ErrorIs(t, err, session.ErrAuthRequired)

	_, _, err = svc.Ensure(ctx, &session.Session{UserID: "u1"}, SignUp{Username: "bad name"})
	assert.ErrorIs(t, err, ErrInvalidUsername)

	_, _, err = svc.Ensure(ctx, &session.Session{UserID: "u1"}, SignUp{Username: "alice"})
	require.NoError(t, err)

	_, _, err = svc.Ensure(ctx, &session.Session{UserID: "u2"}, SignUp{Username: "ALICE"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Get(ctx, "u2")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)
	sess := &session.Session{UserID: "u1", Name: "Alice"}

	_, _, err := svc.Ensure(ctx, sess, SignUp{Username: "alice"})
	require.NoError(t, err)

	user, err := svc.Update(ctx, sess, Patch{
		Major:    strPtr("Computer Science"),
		Year:     intPtr(3),
		Username: strPtr("Ally"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", user.Major)
	assert.Equal(t, 3, user.Year)
	assert.Equal(t, "ally", user.Username)
	assert.Equal(t, "Alice", user.Name)

	// the old username is free again
	snap, err := store.Get(ctx, "usernames/alice")
	require.NoError(t, err)
	assert.False(t, snap.Exists())

	_, _, err = svc.Ensure(ctx, &session.Session{UserID: "u2"}, SignUp{Username: "alice"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, &session.Session{UserID: "u2"}, Patch{Username: strPtr("ally")})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Update(ctx, sess, Patch{Year: intPtr(0)})
	assert.Error(t, err)

	_, err = svc.Update(ctx, nil, Patch{})
	assert.ErrorIs(t, err, session.ErrAuthRequired)

	_, err = svc.Update(ctx, &session.Session{UserID: "nobody"}, Patch{Bio: strPtr("hi")})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestFindByUsernameIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)

	_, _, err := svc.Ensure(ctx, &session.Session{UserID: "u1", Name: "Alice"}, SignUp{Username: "alice"})
	require.NoError(t, err)

	for _, name := range []string{"alice", "ALICE", "Alice"} {
		user, err := svc.FindByUsername(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	}

	// profile written without an index entry
	require.NoError(t, store.Set(ctx, "users/u2", models.User{Name: "Bob", Username: "Bobby"}))
	user, err := svc.FindByUsername(ctx, "bobby")
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)

	_, err = svc.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestAuthors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)

	_, _, err := svc.Ensure(ctx, &session.Session{UserID: "u1", Name: "Zoe"}, SignUp{Username: "zoe"})
	require.NoError(t, err)
	_, _, err = svc.Ensure(ctx, &session.Session{UserID: "u2", Name: "Adam"}, SignUp{Username: "adam"})
	require.NoError(t, err)
	_, _, err = svc.Ensure(ctx, &session.Session{UserID: "u3", Name: "Nameless"}, SignUp{})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "users/u4", map[string]any{"username": "broken"}))

	authors, err := svc.Authors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "adam", authors[0].Username)
	assert.Equal(t, "zoe", authors[1].Username)
}

func TestUpdateRejectsBlankName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)
	sess := &session.Session{UserID: "u1", Name: "Alice"}

	_, _, err := svc.Ensure(ctx, sess, SignUp{})
	require.NoError(t, err)

	_, err = svc.Update(ctx, sess, Patch{Name: strPtr("   ")})
	assert.ErrorIs(t, err, ErrBlankName)

	user, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	user, err = svc.Update(ctx, sess, Patch{Name: strPtr("  Alice Smith ")})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", user.Name)
}
