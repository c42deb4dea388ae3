package getBlog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/services/blog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BlogResponse struct {
	response.Response
	*blog.AuthorPosts
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BlogGetter
type BlogGetter interface {
	ByUsername(ctx context.Context, username string) (*blog.AuthorPosts, error)
}

// New returns the public blog of the user named in the URL. Usernames match regardless of case.
func New(log *slog.Logger, blogs BlogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.getBlog.New"

		log := log.With(slog.String("op", op))

		username := chi.URLParam(r, "username")
		if username == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("username is required"))
			return
		}

		page, err := blogs.ByUsername(r.Context(), username)
		if err != nil {
			if errors.Is(err, blog.ErrAuthorNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			log.Error("failed to get blog", sl.Err(err), slog.String("username", username))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get blog"))
			return
		}

		public := *page.Author
		public.Email = ""
		page.Author = &public

		render.JSON(w, r, BlogResponse{
			Response:    response.OK(),
			AuthorPosts: page,
		})
	}
}
