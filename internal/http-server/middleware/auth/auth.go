package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/lib/token"
	"campusHub/internal/session"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Verifier
type Verifier interface {
	Verify(tokenString string) (*session.Session, error)
}

// New resolves the bearer token, if any, into a session on the request context.
// Requests without an Authorization header pass through anonymously.
func New(log *slog.Logger, verifier Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		log.Info("auth middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid authorization header"))
				return
			}

			s, err := verifier.Verify(raw)
			if err != nil {
				log.Info("rejected token", sl.Err(err))

				msg := "invalid token"
				if errors.Is(err, token.ErrTokenExpired) {
					msg = "token has expired"
				}

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(msg))
				return
			}

			next.ServeHTTP(w, r.WithContext(session.With(r.Context(), s)))
		}

		return http.HandlerFunc(fn)
	}
}

// Required rejects anonymous requests, telling the client where to sign in so it can
// come back to the original destination.
func Required(loginPath string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if session.From(r.Context()) == nil {
				RespondAuthRequired(w, r, loginPath)
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

type loginPathKey struct{}

// WithLoginPath sets the sign-in location used by RespondAuthRequired calls further down the chain
// that do not name one.
func WithLoginPath(loginPath string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), loginPathKey{}, loginPath)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// RespondAuthRequired answers 401 with the sign-in redirect. An empty loginPath falls back to the
// one set by WithLoginPath, then to /login.
func RespondAuthRequired(w http.ResponseWriter, r *http.Request, loginPath string) {
	if loginPath == "" {
		loginPath, _ = r.Context().Value(loginPathKey{}).(string)
	}

	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.AuthRequired(LoginRedirect(loginPath, r.URL.RequestURI())))
}

// LoginRedirect builds the sign-in location that resumes at destination afterwards.
func LoginRedirect(loginPath, destination string) string {
	if loginPath == "" {
		loginPath = "/login"
	}

	return loginPath + "?" + url.Values{"redirect": {destination}}.Encode()
}
