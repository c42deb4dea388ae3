package models

import (
	"fmt"
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

// Event is the record stored at events/{id}. Attendees is a set keyed by user id; its size is the
// attendee count, which is never stored on its own.
type Event struct {
	ID          string          `json:"id"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string          `json:"time"`
	Location    string          `json:"location"`
	Image       string          `json:"image"`
	Tags        []string        `json:"tags,omitempty"`
	Organizer   string          `json:"organizer"`
	OrganizerID string          `json:"organizerId,omitempty"`
	Capacity    int             `json:"capacity,omitempty" validate:"gte=0"`
	Attendees   map[string]bool `json:"attendees,omitempty"`
}

func (e *Event) AttendeeCount() int {
	return len(e.Attendees)
}

func (e *Event) IsRegistered(userID string) bool {
	return userID != "" && e.Attendees[userID]
}

// Day parses the calendar date of the event.
func (e *Event) Day() (time.Time, error) {
	d, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("event %s: bad date %q: %w", e.ID, e.Date, err)
	}
	return d, nil
}

// AttendeeIDs returns the registered user ids in lexical order.
func (e *Event) AttendeeIDs() []string {
	ids := make([]string, 0, len(e.Attendees))
	for id, ok := range e.Attendees {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Attendee is the public projection of a registered user.
type Attendee struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
