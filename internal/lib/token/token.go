// Package token verifies (and, for local development, mints) identity tokens issued by the
// identity provider. Tokens are HS256 JWTs whose subject is the stable user identifier.
package token

import (
	"errors"
	"fmt"
	"time"

	"campusHub/internal/session"
	"campusHub/internal/storage"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")
)

type Claims struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewManager(secret, issuer string) *Manager {
	return &Manager{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue signs a token for s valid for ttl.
func (m *Manager) Issue(s session.Session, ttl time.Duration) (string, error) {
	const op = "token.Issue"

	if !validSubject(s.UserID) {
		return "", fmt.Errorf("%s: %w: subject %q", op, ErrInvalidToken, s.UserID)
	}

	now := m.now()
	claims := Claims{
		Name:    s.Name,
		Email:   s.Email,
		Picture: s.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// Verify validates tokenString and returns the session it asserts.
func (m *Manager) Verify(tokenString string) (*session.Session, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || !validSubject(claims.Subject) {
		return nil, ErrInvalidToken
	}

	return &session.Session{
		UserID:  claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		Picture: claims.Picture,
	}, nil
}

// validSubject reports whether sub can key a record: exactly one store path segment.
func validSubject(sub string) bool {
	segments, err := storage.Split(sub)
	return err == nil && len(segments) == 1 && segments[0] == sub
}
