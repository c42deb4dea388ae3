// Package catalog owns the event records: seeding the sample catalog, creating events and
// listing them in date order.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/session"
	"campusHub/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	eventsPath = "events"

	DefaultImage     = "https://placehold.co/600x400.png"
	DefaultOrganizer = "CampusHub User"
)

var ErrEventNotFound = errors.New("event not found")

type Service struct {
	log   *slog.Logger
	store storage.Store
	now   func() time.Time
}

func New(log *slog.Logger, store storage.Store) *Service {
	return &Service{
		log:   log.With(slog.String("component", "services/catalog")),
		store: store,
		now:   time.Now,
	}
}

func EventPath(id string) string {
	return storage.Join(eventsPath, id)
}

// SeedIfEmpty writes the sample events when the catalog is observed empty. It never writes over
// existing events and reports whether it seeded.
func (s *Service) SeedIfEmpty(ctx context.Context) (bool, error) {
	const op = "services.catalog.SeedIfEmpty"

	seed := make(map[string]models.Event, len(sampleEvents))
	for _, e := range sampleEvents {
		seed[e.ID] = e
	}

	seeded, err := s.store.SetIfAbsent(ctx, eventsPath, seed)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if seeded {
		s.log.Info("seeded sample events", slog.Int("count", len(seed)))
	}

	return seeded, nil
}

type EventInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string   `json:"time" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Image       string   `json:"image,omitempty" validate:"omitempty,url"`
	Tags        []string `json:"tags,omitempty"`
	Capacity    int      `json:"capacity,omitempty" validate:"gte=0"`
}

// Create publishes a new event organized by the signed-in user, who is registered for it.
func (s *Service) Create(ctx context.Context, sess *session.Session, in EventInput) (*models.Event, error) {
	const op = "services.catalog.Create"

	if sess == nil {
		return nil, fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Time = strings.TrimSpace(in.Time)
	in.Location = strings.TrimSpace(in.Location)

	if err := validator.New().Struct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Image:       in.Image,
		Tags:        CleanTags(in.Tags),
		Organizer:   sess.DisplayName(DefaultOrganizer),
		OrganizerID: sess.UserID,
		Capacity:    in.Capacity,
		Attendees:   map[string]bool{sess.UserID: true},
	}
	if event.Image == "" {
		event.Image = DefaultImage
	}

	if err := s.store.Set(ctx, EventPath(event.ID), event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("event created", slog.String("id", event.ID), slog.String("organizer_id", sess.UserID))

	return event, nil
}

// Get returns the event with id. Absent and malformed records both yield ErrEventNotFound.
func (s *Service) Get(ctx context.Context, id string) (*models.Event, error) {
	const op = "services.catalog.Get"

	if _, err := storage.Split(id); err != nil || id == "" || strings.Contains(id, "/") {
		return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
	}

	snap, err := s.store.Get(ctx, EventPath(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event, err := decodeEvent(id, snap)
	if err != nil {
		if errors.Is(err, models.ErrMalformed) {
			s.log.Warn("skipping malformed event", slog.String("id", id), sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
	}

	return event, nil
}

func decodeEvent(id string, snap storage.Snapshot) (*models.Event, error) {
	var event models.Event
	if err := models.Decode(snap, &event); err != nil {
		return nil, err
	}
	event.ID = id

	return &event, nil
}

// DecodeEvent turns a snapshot of events/{id} into an event.
func DecodeEvent(snap storage.Snapshot) (*models.Event, error) {
	segments, err := storage.Split(snap.Path)
	if err != nil || len(segments) == 0 {
		return nil, ErrEventNotFound
	}
	return decodeEvent(segments[len(segments)-1], snap)
}

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

type Filter struct {
	// From is an inclusive lower bound on the event date. Zero means no bound.
	From  time.Time
	Order Order
	Limit int
	Tag   string
}

// List returns the events matching f ordered by date, ties broken by id.
func (s *Service) List(ctx context.Context, f Filter) ([]models.Event, error) {
	const op = "services.catalog.List"

	snap, err := s.store.Get(ctx, eventsPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var raw map[string]json.RawMessage
	if snap.Exists() {
		if err := snap.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	type dated struct {
		event models.Event
		day   time.Time
	}

	events := make([]dated, 0, len(raw))
	for id, value := range raw {
		event, err := decodeEvent(id, storage.Snapshot{Path: EventPath(id), Value: value})
		if err != nil {
			s.log.Warn("skipping malformed event", slog.String("id", id), sl.Err(err))
			continue
		}

		day, err := event.Day()
		if err != nil {
			s.log.Warn("skipping malformed event", slog.String("id", id), sl.Err(err))
			continue
		}

		if !f.From.IsZero() && day.Before(truncateDay(f.From)) {
			continue
		}
		if f.Tag != "" && !hasTag(event.Tags, f.Tag) {
			continue
		}

		events = append(events, dated{event: *event, day: day})
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.day.Equal(b.day) {
			if f.Order == OrderDesc {
				return a.day.After(b.day)
			}
			return a.day.Before(b.day)
		}
		return a.event.ID < b.event.ID
	})

	if f.Limit > 0 && len(events) > f.Limit {
		events = events[:f.Limit]
	}

	out := make([]models.Event, 0, len(events))
	for _, d := range events {
		out = append(out, d.event)
	}

	return out, nil
}

// ParseFrom reads a lower date bound: empty, "today" or YYYY-MM-DD.
func (s *Service) ParseFrom(value string) (time.Time, error) {
	switch value {
	case "":
		return time.Time{}, nil
	case "today":
		return truncateDay(s.now()), nil
	}

	d, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return d, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CleanTags trims tags and drops empty ones.
func CleanTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}
