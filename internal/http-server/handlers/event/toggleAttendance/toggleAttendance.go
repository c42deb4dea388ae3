package toggleAttendance

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"campusHub/internal/http-server/middleware/auth"
	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/services/attendance"
	"campusHub/internal/services/catalog"
	"campusHub/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type AttendanceResponse struct {
	response.Response
	Registered    bool `json:"registered"`
	AttendeeCount int  `json:"attendee_count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendanceToggler
type AttendanceToggler interface {
	Toggle(ctx context.Context, eventID string, sess *session.Session) (bool, error)
	Count(ctx context.Context, eventID string) (int, error)
}

// New flips the caller's registration for the event in the URL.
func New(log *slog.Logger, toggler AttendanceToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.toggleAttendance.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		sess := session.From(r.Context())
		if sess == nil {
			auth.RespondAuthRequired(w, r, "")
			return
		}

		registered, err := toggler.Toggle(r.Context(), eventID, sess)
		if err != nil {
			log.Error("failed to toggle attendance", sl.Err(err))

			switch {
			case errors.Is(err, session.ErrAuthRequired):
				auth.RespondAuthRequired(w, r, "")
			case errors.Is(err, catalog.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, attendance.ErrCapacityExceeded):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is at capacity"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update attendance"))
			}

			return
		}

		count, err := toggler.Count(r.Context(), eventID)
		if err != nil {
			log.Error("failed to count attendees", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update attendance"))
			return
		}

		log.Info("attendance toggled",
			slog.String("user_id", sess.UserID),
			slog.Bool("registered", registered),
		)

		responseOK(w, r, registered, count)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, registered bool, count int) {
	render.JSON(w, r, AttendanceResponse{
		Response:      response.OK(),
		Registered:    registered,
		AttendeeCount: count,
	})
}
