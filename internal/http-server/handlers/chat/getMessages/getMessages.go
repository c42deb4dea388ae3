package getMessages

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/http-server/middleware/auth"
	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/chat"
	"campusHub/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type MessagesResponse struct {
	response.Response
	Messages []models.Message `json:"messages"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MessageLister
type MessageLister interface {
	Messages(ctx context.Context, sess *session.Session, contactID string) ([]models.Message, error)
}

func New(log *slog.Logger, chats MessageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.getMessages.New"

		log := log.With(slog.String("op", op))

		contactID := chi.URLParam(r, "contactId")

		messages, err := chats.Messages(r.Context(), session.From(r.Context()), contactID)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrAuthRequired):
				auth.RespondAuthRequired(w, r, "")
			case errors.Is(err, chat.ErrContactNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("contact not found"))
			default:
				log.Error("failed to load messages", sl.Err(err), slog.String("contact_id", contactID))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to load messages"))
			}

			return
		}

		if messages == nil {
			messages = []models.Message{}
		}

		render.JSON(w, r, MessagesResponse{
			Response: response.OK(),
			Messages: messages,
		})
	}
}
