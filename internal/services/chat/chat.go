// Package chat keeps per-user conversation threads. Only the assistant thread gets replies;
// the other contacts are a fixed directory with scripted openings.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/session"
	"campusHub/internal/storage"

	"github.com/google/uuid"
)

const chatsPath = "chats"

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrEmptyMessage    = errors.New("message text is required")
)

type Replier interface {
	Reply(ctx context.Context, utterance string) string
}

type Service struct {
	log       *slog.Logger
	store     storage.Store
	assistant Replier
}

func New(log *slog.Logger, store storage.Store, assistant Replier) *Service {
	return &Service{
		log:       log.With(slog.String("component", "services/chat")),
		store:     store,
		assistant: assistant,
	}
}

func (s *Service) Contacts() []models.Contact {
	out := make([]models.Contact, len(contacts))
	copy(out, contacts)
	return out
}

func findContact(id string) (models.Contact, bool) {
	for _, c := range contacts {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

func threadPath(userID, contactID string) string {
	return storage.Join(chatsPath, userID, contactID)
}

// Messages returns the caller's thread with contactID, oldest first. A thread nobody wrote to
// yet shows the scripted opening.
func (s *Service) Messages(ctx context.Context, sess *session.Session, contactID string) ([]models.Message, error) {
	const op = "services.chat.Messages"

	if sess == nil {
		return nil, fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}
	if _, ok := findContact(contactID); !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrContactNotFound)
	}

	messages, err := s.thread(ctx, sess.UserID, contactID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(messages) == 0 {
		messages = append([]models.Message{}, openings[contactID]...)
	}

	return messages, nil
}

// Send appends the caller's message to the thread and, in the assistant thread, the reply.
// It returns the messages it added.
func (s *Service) Send(ctx context.Context, sess *session.Session, contactID, text string) ([]models.Message, error) {
	const op = "services.chat.Send"

	if sess == nil {
		return nil, fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}
	if _, ok := findContact(contactID); !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrContactNotFound)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyMessage)
	}

	existing, err := s.thread(ctx, sess.UserID, contactID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	thread := threadPath(sess.UserID, contactID)

	if len(existing) == 0 && len(openings[contactID]) > 0 {
		script := map[string]any{}
		for _, m := range openings[contactID] {
			script["opening-"+m.ID] = messageValue(m)
		}
		if err := s.store.Update(ctx, thread, script); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	mine := models.Message{ID: uuid.NewString(), Sender: models.SenderMe, Text: text}
	if err := s.store.Set(ctx, storage.Join(thread, mine.ID), messageValue(mine)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	added := []string{mine.ID}

	if contactID == AssistantContactID {
		reply := models.Message{ID: uuid.NewString(), Sender: models.SenderOther, Text: s.assistant.Reply(ctx, text)}

		// the reply is kept even if the caller has gone away meanwhile
		if err := s.store.Set(context.WithoutCancel(ctx), storage.Join(thread, reply.ID), messageValue(reply)); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		added = append(added, reply.ID)
	}

	messages, err := s.thread(ctx, sess.UserID, contactID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.Message, 0, len(added))
	for _, id := range added {
		for _, m := range messages {
			if m.ID == id {
				out = append(out, m)
			}
		}
	}

	return out, nil
}

func messageValue(m models.Message) map[string]any {
	return map[string]any{
		"id":        m.ID,
		"sender":    m.Sender,
		"text":      m.Text,
		"timestamp": storage.ServerTimestamp,
	}
}

func (s *Service) thread(ctx context.Context, userID, contactID string) ([]models.Message, error) {
	snap, err := s.store.Get(ctx, threadPath(userID, contactID))
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if snap.Exists() {
		if err := snap.Decode(&raw); err != nil {
			return nil, err
		}
	}

	messages := make([]models.Message, 0, len(raw))
	for key, value := range raw {
		var m models.Message
		if err := models.Decode(storage.Snapshot{Path: storage.Join(snap.Path, key), Value: value}, &m); err != nil {
			s.log.Warn("skipping malformed message", slog.String("key", key), sl.Err(err))
			continue
		}
		if m.ID == "" {
			m.ID = key
		}
		messages = append(messages, m)
	}

	sort.Slice(messages, func(i, j int) bool {
		if messages[i].Timestamp != messages[j].Timestamp {
			return messages[i].Timestamp < messages[j].Timestamp
		}
		return messages[i].ID < messages[j].ID
	})

	return messages, nil
}
