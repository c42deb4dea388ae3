package setAttendance

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
	"github.com/go-playground/validator/v10"
)

type AttendanceRequest struct {
	Registered *bool `json:"registered" validate:"required"`
}

type AttendanceResponse struct {
	response.Response
	Registered    bool `json:"registered"`
	AttendeeCount int  `json:"attendee_count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationSetter
type RegistrationSetter interface {
	SetRegistration(ctx context.Context, eventID string, sess *session.Session, registered bool) error
	Count(ctx context.Context, eventID string) (int, error)
}

// New puts the caller in the requested registration state. Submitting the same state twice is a no-op.
func New(log *slog.Logger, setter RegistrationSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.setAttendance.New"

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

		var req AttendanceRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = setter.SetRegistration(r.Context(), eventID, sess, *req.Registered)
		if err != nil {
			log.Error("failed to set attendance", sl.Err(err))

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

		count, err := setter.Count(r.Context(), eventID)
		if err != nil {
			log.Error("failed to count attendees", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update attendance"))
			return
		}

		log.Info("attendance set",
			slog.String("user_id", sess.UserID),
			slog.Bool("registered", *req.Registered),
		)

		responseOK(w, r, *req.Registered, count)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, registered bool, count int) {
	render.JSON(w, r, AttendanceResponse{
		Response:      response.OK(),
		Registered:    registered,
		AttendeeCount: count,
	})
}
