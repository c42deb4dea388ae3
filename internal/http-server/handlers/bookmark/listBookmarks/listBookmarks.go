package listBookmarks

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/http-server/middleware/auth"
	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/session"

	"github.com/go-chi/render"
)

type BookmarksResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookmarkLister
type BookmarkLister interface {
	List(ctx context.Context, sess *session.Session) ([]models.Event, error)
}

func New(log *slog.Logger, bookmarks BookmarkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bookmark.listBookmarks.New"

		log := log.With(slog.String("op", op))

		events, err := bookmarks.List(r.Context(), session.From(r.Context()))
		if err != nil {
			if errors.Is(err, session.ErrAuthRequired) {
				auth.RespondAuthRequired(w, r, "")
				return
			}

			log.Error("failed to list bookmarks", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list bookmarks"))
			return
		}

		if events == nil {
			events = []models.Event{}
		}

		render.JSON(w, r, BookmarksResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}
