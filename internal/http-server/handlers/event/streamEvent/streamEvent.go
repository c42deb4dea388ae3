package streamEvent

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"campusHub/internal/lib/api/response"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/services/attendance"
	"campusHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const keepAlive = 25 * time.Second

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventWatcher
type EventWatcher interface {
	Watch(eventID string, handler func(attendance.Status)) (storage.Subscription, error)
}

// New streams the event and its attendee count as Server-Sent Events: one "status" event
// right away and another after every change. A "deleted" event ends the stream when the
// event goes away. The subscription is released as soon as the client disconnects.
func New(log *slog.Logger, watcher EventWatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.streamEvent.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		// Only the latest status matters; a slow client skips intermediate ones.
		updates := make(chan attendance.Status, 1)

		sub, err := watcher.Watch(eventID, func(st attendance.Status) {
			select {
			case <-updates:
			default:
			}
			updates <- st
		})
		if err != nil {
			log.Error("failed to watch event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to watch event"))
			return
		}
		defer sub.Cancel()

		rc := http.NewResponseController(w)
		// Streams outlive the server write timeout.
		_ = rc.SetWriteDeadline(time.Time{})

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		_ = rc.Flush()

		log.Info("stream opened")

		ticker := time.NewTicker(keepAlive)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				log.Info("stream closed by client")
				return

			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := rc.Flush(); err != nil {
					return
				}

			case st := <-updates:
				if st.Event == nil {
					_, _ = fmt.Fprint(w, "event: deleted\ndata: {}\n\n")
					_ = rc.Flush()
					log.Info("event gone, stream closed")
					return
				}

				if err := writeEvent(w, "status", st); err != nil {
					log.Info("stream write failed", sl.Err(err))
					return
				}
				if err := rc.Flush(); err != nil {
					return
				}
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	return err
}
