// Package attendance registers and unregisters users for events. Membership lives in the
// attendees set of the event record and is flipped with one atomic store operation, so
// concurrent requests from distinct users never conflict.
package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/catalog"
	"campusHub/internal/session"
	"campusHub/internal/storage"
)

var ErrCapacityExceeded = errors.New("event is at capacity")

type EventGetter interface {
	Get(ctx context.Context, id string) (*models.Event, error)
}

type Service struct {
	log    *slog.Logger
	store  storage.Store
	events EventGetter

	enforceCapacity bool
}

func New(log *slog.Logger, store storage.Store, events EventGetter, enforceCapacity bool) *Service {
	return &Service{
		log:             log.With(slog.String("component", "services/attendance")),
		store:           store,
		events:          events,
		enforceCapacity: enforceCapacity,
	}
}

func attendeePath(eventID, userID string) string {
	return storage.Join(catalog.EventPath(eventID), "attendees", userID)
}

// Toggle flips the caller's registration and returns whether they are registered afterwards.
func (s *Service) Toggle(ctx context.Context, eventID string, sess *session.Session) (bool, error) {
	const op = "services.attendance.Toggle"

	if sess == nil {
		return false, fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}

	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if !event.IsRegistered(sess.UserID) {
		if err := s.checkCapacity(event); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}

	registered, err := s.store.Toggle(ctx, attendeePath(eventID, sess.UserID), true)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("attendance toggled",
		slog.String("event_id", eventID),
		slog.String("user_id", sess.UserID),
		slog.Bool("registered", registered),
	)

	return registered, nil
}

// SetRegistration puts the caller in the requested state. Repeating it changes nothing.
func (s *Service) SetRegistration(ctx context.Context, eventID string, sess *session.Session, registered bool) error {
	const op = "services.attendance.SetRegistration"

	if sess == nil {
		return fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}

	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	path := attendeePath(eventID, sess.UserID)

	if !registered {
		if err := s.store.Remove(ctx, path); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	if event.IsRegistered(sess.UserID) {
		return nil
	}
	if err := s.checkCapacity(event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.Set(ctx, path, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) checkCapacity(event *models.Event) error {
	if !s.enforceCapacity || event.Capacity <= 0 {
		return nil
	}
	if event.AttendeeCount() >= event.Capacity {
		return ErrCapacityExceeded
	}
	return nil
}

func (s *Service) Count(ctx context.Context, eventID string) (int, error) {
	const op = "services.attendance.Count"

	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return event.AttendeeCount(), nil
}

func (s *Service) IsRegistered(ctx context.Context, eventID, userID string) (bool, error) {
	const op = "services.attendance.IsRegistered"

	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return event.IsRegistered(userID), nil
}

// Attendees resolves the registered users of an event to their public profile, ordered by name.
// Users whose profile is missing or unreadable are left out.
func (s *Service) Attendees(ctx context.Context, eventID string) ([]models.Attendee, error) {
	const op = "services.attendance.Attendees"

	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	attendees := make([]models.Attendee, 0, event.AttendeeCount())
	for _, uid := range event.AttendeeIDs() {
		snap, err := s.store.Get(ctx, storage.Join("users", uid))
		if err != nil {
			s.log.Warn("cannot load attendee profile", slog.String("user_id", uid), sl.Err(err))
			continue
		}

		var user models.User
		if err := models.Decode(snap, &user); err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				s.log.Warn("skipping malformed profile", slog.String("user_id", uid), sl.Err(err))
			}
			continue
		}
		user.ID = uid

		attendees = append(attendees, user.Attendee())
	}

	sort.Slice(attendees, func(i, j int) bool {
		if attendees[i].Name != attendees[j].Name {
			return attendees[i].Name < attendees[j].Name
		}
		return attendees[i].ID < attendees[j].ID
	})

	return attendees, nil
}

// Status is what watchers of an event see after every change.
type Status struct {
	Event *models.Event `json:"event,omitempty"`
	Count int           `json:"attendee_count"`
}

// Watch calls handler with the current status of the event and again after every change to it.
// A deleted or unreadable event is reported with a nil Event.
func (s *Service) Watch(eventID string, handler func(Status)) (storage.Subscription, error) {
	const op = "services.attendance.Watch"

	sub, err := s.store.Subscribe(catalog.EventPath(eventID), func(snap storage.Snapshot) {
		event, err := catalog.DecodeEvent(snap)
		if err != nil {
			handler(Status{})
			return
		}
		handler(Status{Event: event, Count: event.AttendeeCount()})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}
