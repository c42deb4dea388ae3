package token

import (
	"testing"
	"time"

	"campusHub/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", "campushub-identity")

	signed, err := m.Issue(session.Session{UserID: "u1", Name: "Alice", Email: "alice@campus.edu"}, time.Hour)
	require.NoError(t, err)

	s, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, "Alice", s.Name)
	assert.Equal(t, "alice@campus.edu", s.Email)
}

func TestVerifyErrors(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", "")
	signed, err := m.Issue(session.Session{UserID: "u1"}, time.Minute)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		manager *Manager
		token   string
		wantErr error
	}{
		{
			name:    "Garbage",
			manager: m,
			token:   "not-a-token",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Wrong secret",
			manager: NewManager("other", ""),
			token:   signed,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Wrong issuer",
			manager: NewManager("secret", "someone-else"),
			token:   signed,
			wantErr: ErrInvalidToken,
		},
		{
			name: "Expired",
			manager: func() *Manager {
				later := NewManager("secret", "")
				later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
				return later
			}(),
			token:   signed,
			wantErr: ErrTokenExpired,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := tc.manager.Verify(tc.token)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestIssueRequiresSubject(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", "")

	for _, sub := range []string{"", "evil/x", "/u1", "u1.admin", "a[0]"} {
		_, err := m.Issue(session.Session{UserID: sub}, time.Minute)
		assert.ErrorIs(t, err, ErrInvalidToken, sub)
	}
}

func TestVerifyRejectsSubjectsThatAreNotOneKey(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", "")

	testCases := []struct {
		name    string
		subject string
	}{
		{name: "Nested path", subject: "evil/x"},
		{name: "Leading slash", subject: "/u1"},
		{name: "Dot", subject: "u1.admin"},
		{name: "Brackets", subject: "a[0]"},
		{name: "Empty", subject: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   tc.subject,
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
				},
			}).SignedString([]byte("secret"))
			require.NoError(t, err)

			_, err = m.Verify(signed)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
