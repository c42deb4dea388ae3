package getAttendees

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/catalog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type AttendeesResponse struct {
	response.Response
	Attendees []models.Attendee `json:"attendees"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeLister
type AttendeeLister interface {
	Attendees(ctx context.Context, eventID string) ([]models.Attendee, error)
}

func New(log *slog.Logger, lister AttendeeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAttendees.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		attendees, err := lister.Attendees(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, catalog.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get attendees", sl.Err(err), slog.String("event_id", eventID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get attendees"))
			return
		}

		if attendees == nil {
			attendees = []models.Attendee{}
		}

		render.JSON(w, r, AttendeesResponse{
			Response:  response.OK(),
			Attendees: attendees,
		})
	}
}
