package getProfile

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
)

type ProfileResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileGetter
type ProfileGetter interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// New returns the signed-in user's own profile.
func New(log *slog.Logger, profiles ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.getProfile.New"

		log := log.With(slog.String("op", op))

		sess := session.From(r.Context())
		if sess == nil {
			auth.RespondAuthRequired(w, r, "")
			return
		}

		user, err := profiles.Get(r.Context(), sess.UserID)
		if err != nil {
			if errors.Is(err, profile.ErrProfileNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("profile not found"))
				return
			}

			log.Error("failed to get profile", sl.Err(err), slog.String("user_id", sess.UserID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get profile"))
			return
		}

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
