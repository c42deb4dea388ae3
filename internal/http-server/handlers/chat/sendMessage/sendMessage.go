package sendMessage

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
	"github.com/go-playground/validator/v10"
)

type MessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type MessagesResponse struct {
	response.Response
	Messages []models.Message `json:"messages"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MessageSender
type MessageSender interface {
	Send(ctx context.Context, sess *session.Session, contactID, text string) ([]models.Message, error)
}

// New posts a message to a contact. The response holds the stored message and, when talking to
// the assistant, its reply.
func New(log *slog.Logger, chats MessageSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.sendMessage.New"

		log := log.With(slog.String("op", op))

		contactID := chi.URLParam(r, "contactId")

		sess := session.From(r.Context())
		if sess == nil {
			auth.RespondAuthRequired(w, r, "")
			return
		}

		var req MessageRequest

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

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		added, err := chats.Send(r.Context(), sess, contactID, req.Text)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrAuthRequired):
				auth.RespondAuthRequired(w, r, "")
			case errors.Is(err, chat.ErrContactNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("contact not found"))
			case errors.Is(err, chat.ErrEmptyMessage):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(chat.ErrEmptyMessage.Error()))
			default:
				log.Error("failed to send message", sl.Err(err), slog.String("contact_id", contactID))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to send message"))
			}

			return
		}

		log.Info("message sent", slog.String("contact_id", contactID), slog.Int("added", len(added)))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, MessagesResponse{
			Response: response.OK(),
			Messages: added,
		})
	}
}
