package listAuthors

import (
	"context"
	"log/slog"
	"net/http"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"

	"github.com/go-chi/render"
)

// Author is the public card shown in the blog directory.
type Author struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Major    string `json:"major,omitempty"`
}

type AuthorsResponse struct {
	response.Response
	Authors []Author `json:"authors"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AuthorLister
type AuthorLister interface {
	Authors(ctx context.Context) ([]models.User, error)
}

func New(log *slog.Logger, profiles AuthorLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.listAuthors.New"

		log := log.With(slog.String("op", op))

		users, err := profiles.Authors(r.Context())
		if err != nil {
			log.Error("failed to list authors", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list authors"))
			return
		}

		authors := make([]Author, 0, len(users))
		for _, u := range users {
			authors = append(authors, Author{
				ID:       u.ID,
				Name:     u.Name,
				Username: u.Username,
				Avatar:   u.Avatar,
				Major:    u.Major,
			})
		}

		render.JSON(w, r, AuthorsResponse{
			Response: response.OK(),
			Authors:  authors,
		})
	}
}
