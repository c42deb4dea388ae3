package deletePost

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"campusHub/internal/http-server/middleware/auth"
	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/services/blog"
	"campusHub/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostDeleter
type PostDeleter interface {
	Delete(ctx context.Context, sess *session.Session, postID string, confirmed bool) error
}

// New permanently deletes one of the caller's posts. The request must carry confirm=true.
func New(log *slog.Logger, posts PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.deletePost.New"

		log := log.With(slog.String("op", op))

		postID := chi.URLParam(r, "postId")
		if postID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("post id is required"))
			return
		}

		confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

		err := posts.Delete(r.Context(), session.From(r.Context()), postID, confirmed)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrAuthRequired):
				auth.RespondAuthRequired(w, r, "")
			case errors.Is(err, blog.ErrConfirmationRequired):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("deleting a post is permanent, repeat the request with confirm=true"))
			case errors.Is(err, blog.ErrPostNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("post not found"))
			default:
				log.Error("failed to delete post", sl.Err(err), slog.String("post_id", postID))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete post"))
			}

			return
		}

		log.Info("post deleted", slog.String("post_id", postID))

		render.JSON(w, r, response.OK())
	}
}
