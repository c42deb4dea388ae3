package listPosts

import (
	"context"
	"log/slog"
	"net/http"

	"campusHub/internal/http-server/middleware/auth"
	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/session"

	"github.com/go-chi/render"
)

type PostsResponse struct {
	response.Response
	Posts []models.BlogPost `json:"posts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostLister
type PostLister interface {
	List(ctx context.Context, authorID string) ([]models.BlogPost, error)
}

// New lists the caller's own posts, most recent first.
func New(log *slog.Logger, posts PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.listPosts.New"

		log := log.With(slog.String("op", op))

		sess := session.From(r.Context())
		if sess == nil {
			auth.RespondAuthRequired(w, r, "")
			return
		}

		list, err := posts.List(r.Context(), sess.UserID)
		if err != nil {
			log.Error("failed to list posts", sl.Err(err), slog.String("user_id", sess.UserID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list posts"))
			return
		}

		if list == nil {
			list = []models.BlogPost{}
		}

		render.JSON(w, r, PostsResponse{
			Response: response.OK(),
			Posts:    list,
		})
	}
}
