package listContacts

import (
	"log/slog"
	"net/http"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/models"

	"github.com/go-chi/render"
)

type ContactsResponse struct {
	response.Response
	Contacts []models.Contact `json:"contacts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContactLister
type ContactLister interface {
	Contacts() []models.Contact
}

func New(log *slog.Logger, chats ContactLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.listContacts.New"

		contacts := chats.Contacts()

		log.Debug("contacts listed", slog.String("op", op), slog.Int("count", len(contacts)))

		render.JSON(w, r, ContactsResponse{
			Response: response.OK(),
			Contacts: contacts,
		})
	}
}
