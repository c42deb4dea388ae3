package toggleBookmark

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/http-server/middleware/auth"
	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/services/catalog"
	"campusHub/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BookmarkResponse struct {
	response.Response
	Bookmarked bool `json:"bookmarked"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookmarkToggler
type BookmarkToggler interface {
	Toggle(ctx context.Context, sess *session.Session, eventID string) (bool, error)
}

func New(log *slog.Logger, bookmarks BookmarkToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.toggleBookmark.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		bookmarked, err := bookmarks.Toggle(r.Context(), session.From(r.Context()), eventID)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrAuthRequired):
				auth.RespondAuthRequired(w, r, "")
			case errors.Is(err, catalog.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			default:
				log.Error("failed to toggle bookmark", sl.Err(err), slog.String("event_id", eventID))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update bookmark"))
			}

			return
		}

		render.JSON(w, r, BookmarkResponse{
			Response:   response.OK(),
			Bookmarked: bookmarked,
		})
	}
}
