package getAllEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/catalog"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	List(ctx context.Context, f catalog.Filter) ([]models.Event, error)
	ParseFrom(value string) (time.Time, error)
}

// New lists events. Query parameters: from (YYYY-MM-DD or "today"), order (asc|desc), limit, tag.
func New(log *slog.Logger, events EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		query := r.URL.Query()

		from, err := events.ParseFrom(strings.TrimSpace(query.Get("from")))
		if err != nil {
			log.Info("invalid from parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("from must be a date in YYYY-MM-DD format or \"today\""))
			return
		}

		filter := catalog.Filter{
			From: from,
			Tag:  strings.TrimSpace(query.Get("tag")),
		}

		switch order := catalog.Order(strings.ToLower(query.Get("order"))); order {
		case "", catalog.OrderAsc:
			filter.Order = catalog.OrderAsc
		case catalog.OrderDesc:
			filter.Order = catalog.OrderDesc
		default:
			log.Info("invalid order parameter", slog.String("order", string(order)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("order must be asc or desc"))
			return
		}

		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				log.Info("invalid limit parameter", slog.String("limit", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("limit must be a non-negative integer"))
				return
			}
			filter.Limit = limit
		}

		list, err := events.List(r.Context(), filter)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	if events == nil {
		events = []models.Event{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
