package createPost

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/http-server/middleware/auth"
	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/blog"
	"campusHub/internal/session"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type PostResponse struct {
	response.Response
	Post *models.BlogPost `json:"post"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostCreator
type PostCreator interface {
	Create(ctx context.Context, sess *session.Session, title, content string) (*models.BlogPost, error)
}

func New(log *slog.Logger, posts PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.createPost.New"

		log := log.With(slog.String("op", op))

		sess := session.From(r.Context())
		if sess == nil {
			auth.RespondAuthRequired(w, r, "")
			return
		}

		var req PostRequest

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

		post, err := posts.Create(r.Context(), sess, req.Title, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrAuthRequired):
				auth.RespondAuthRequired(w, r, "")
			case errors.Is(err, blog.ErrEmptyPost):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(blog.ErrEmptyPost.Error()))
			default:
				log.Error("failed to create post", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create post"))
			}

			return
		}

		log.Info("post created", slog.String("post_id", post.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, PostResponse{
			Response: response.OK(),
			Post:     post,
		})
	}
}
