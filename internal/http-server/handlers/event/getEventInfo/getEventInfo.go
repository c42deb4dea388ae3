package getEventInfo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/catalog"
	"campusHub/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventInfoResponse struct {
	response.Response
	Event         *models.Event     `json:"event"`
	AttendeeCount int               `json:"attendee_count"`
	Registered    bool              `json:"registered"`
	Attendees     []models.Attendee `json:"attendees"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Get(ctx context.Context, id string) (*models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeLister
type AttendeeLister interface {
	Attendees(ctx context.Context, eventID string) ([]models.Attendee, error)
}

// New returns the event detail: the record, its attendee count, whether the caller is
// registered and the resolved attendee list.
func New(log *slog.Logger, events EventGetter, attendees AttendeeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		event, err := events.Get(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, catalog.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event information", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		list, err := attendees.Attendees(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get attendees", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		registered := false
		if sess := session.From(r.Context()); sess != nil {
			registered = event.IsRegistered(sess.UserID)
		}

		log.Info("event info successfully received", slog.Int("attendee_count", event.AttendeeCount()))

		responseOK(w, r, event, registered, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event, registered bool, attendees []models.Attendee) {
	if attendees == nil {
		attendees = []models.Attendee{}
	}

	render.JSON(w, r, EventInfoResponse{
		Response:      response.OK(),
		Event:         event,
		AttendeeCount: event.AttendeeCount(),
		Registered:    registered,
		Attendees:     attendees,
	})
}
