// Package bookmark lets users keep a private list of events, bookmarks/{userId}/{eventId}.
package bookmark

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"campusHub/internal/models"
	"campusHub/internal/services/catalog"
	"campusHub/internal/session"
	"campusHub/internal/storage"
)

const bookmarksPath = "bookmarks"

type EventGetter interface {
	Get(ctx context.Context, id string) (*models.Event, error)
}

type Service struct {
	log    *slog.Logger
	store  storage.Store
	events EventGetter
}

func New(log *slog.Logger, store storage.Store, events EventGetter) *Service {
	return &Service{
		log:    log.With(slog.String("component", "services/bookmark")),
		store:  store,
		events: events,
	}
}

// Toggle bookmarks or un-bookmarks an event and returns whether it is bookmarked afterwards.
func (s *Service) Toggle(ctx context.Context, sess *session.Session, eventID string) (bool, error) {
	const op = "services.bookmark.Toggle"

	if sess == nil {
		return false, fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}

	if _, err := s.events.Get(ctx, eventID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	bookmarked, err := s.store.Toggle(ctx, storage.Join(bookmarksPath, sess.UserID, eventID), true)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return bookmarked, nil
}

// List returns the caller's bookmarked events in date order. Events deleted since are skipped.
func (s *Service) List(ctx context.Context, sess *session.Session) ([]models.Event, error) {
	const op = "services.bookmark.List"

	if sess == nil {
		return nil, fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}

	snap, err := s.store.Get(ctx, storage.Join(bookmarksPath, sess.UserID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ids map[string]json.RawMessage
	if snap.Exists() {
		if err := snap.Decode(&ids); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	events := make([]models.Event, 0, len(ids))
	for id := range ids {
		event, err := s.events.Get(ctx, id)
		if err != nil {
			if !errors.Is(err, catalog.ErrEventNotFound) {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			continue
		}
		events = append(events, *event)
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].ID < events[j].ID
	})

	return events, nil
}
