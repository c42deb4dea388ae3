package updateProfile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/http-server/middleware/auth"
	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/profile"
	"campusHub/internal/session"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ProfileResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileUpdater
type ProfileUpdater interface {
	Update(ctx context.Context, sess *session.Session, p profile.Patch) (*models.User, error)
}

// New applies a partial update to the caller's own profile.
func New(log *slog.Logger, profiles ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.updateProfile.New"

		log := log.With(slog.String("op", op))

		sess := session.From(r.Context())
		if sess == nil {
			auth.RespondAuthRequired(w, r, "")
			return
		}

		var req profile.Patch

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		user, err := profiles.Update(r.Context(), sess, req)
		if err != nil {
			var validateErr validator.ValidationErrors

			switch {
			case errors.Is(err, session.ErrAuthRequired):
				auth.RespondAuthRequired(w, r, "")
			case errors.As(err, &validateErr):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
			case errors.Is(err, profile.ErrInvalidUsername):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(profile.ErrInvalidUsername.Error()))
			case errors.Is(err, profile.ErrBlankName):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(profile.ErrBlankName.Error()))
			case errors.Is(err, profile.ErrUsernameTaken):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(profile.ErrUsernameTaken.Error()))
			case errors.Is(err, profile.ErrProfileNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("profile not found"))
			default:
				log.Error("failed to update profile", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update profile"))
			}

			return
		}

		log.Info("profile updated", slog.String("user_id", sess.UserID))

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
