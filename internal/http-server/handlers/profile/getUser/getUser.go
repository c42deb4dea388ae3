package getUser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/profile"
	"campusHub/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type UserResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileGetter
type ProfileGetter interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// New returns another user's public profile. The email address is only shown to its owner.
func New(log *slog.Logger, profiles ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.getUser.New"

		log := log.With(slog.String("op", op))

		userID := chi.URLParam(r, "id")
		if userID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		user, err := profiles.Get(r.Context(), userID)
		if err != nil {
			if errors.Is(err, profile.ErrProfileNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			log.Error("failed to get user", sl.Err(err), slog.String("user_id", userID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get user"))
			return
		}

		if sess := session.From(r.Context()); sess == nil || sess.UserID != user.ID {
			public := *user
			public.Email = ""
			user = &public
		}

		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
