package ensureProfile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"campusHub/internal/http-server/middleware/auth"
	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/profile"
	"campusHub/internal/session"

	"github.com/go-chi/render"
)

type SessionResponse struct {
	response.Response
	User    *models.User `json:"user"`
	Created bool         `json:"created"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileEnsurer
type ProfileEnsurer interface {
	Ensure(ctx context.Context, sess *session.Session, in profile.SignUp) (*models.User, bool, error)
}

// New completes sign-in: the first call for a user creates their profile, later calls return it.
// The body is optional and only used on the first call.
func New(log *slog.Logger, profiles ProfileEnsurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.ensureProfile.New"

		log := log.With(slog.String("op", op))

		sess := session.From(r.Context())
		if sess == nil {
			auth.RespondAuthRequired(w, r, "")
			return
		}

		var req profile.SignUp

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		user, created, err := profiles.Ensure(r.Context(), sess, req)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrAuthRequired):
				auth.RespondAuthRequired(w, r, "")
			case errors.Is(err, profile.ErrInvalidUsername):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(profile.ErrInvalidUsername.Error()))
			case errors.Is(err, profile.ErrUsernameTaken):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(profile.ErrUsernameTaken.Error()))
			default:
				log.Error("failed to ensure profile", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to load profile"))
			}

			return
		}

		if created {
			log.Info("first sign-in", slog.String("user_id", sess.UserID))
			render.Status(r, http.StatusCreated)
		}

		render.JSON(w, r, SessionResponse{
			Response: response.OK(),
			User:     user,
			Created:  created,
		})
	}
}
