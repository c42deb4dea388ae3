// Package issues records problem reports from users and notifies the support inbox.
package issues

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/mailer"
	"campusHub/internal/session"
	"campusHub/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	issuesPath = "issues"

	Anonymous = "anonymous"
)

type Report struct {
	Category    string `json:"category" validate:"required,oneof=bug feature content account other"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type Service struct {
	log        *slog.Logger
	store      storage.Store
	mailer     mailer.Mailer
	recipients []string
}

func New(log *slog.Logger, store storage.Store, m mailer.Mailer, recipients []string) *Service {
	return &Service{
		log:        log.With(slog.String("component", "services/issues")),
		store:      store,
		mailer:     m,
		recipients: recipients,
	}
}

// Submit stores the report. Signing in is optional; anonymous reports are accepted.
func (s *Service) Submit(ctx context.Context, sess *session.Session, r Report) (*models.Issue, error) {
	const op = "services.issues.Submit"

	r.Subject = strings.TrimSpace(r.Subject)
	r.Description = strings.TrimSpace(r.Description)

	if err := validator.New().Struct(r); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	issue := models.Issue{
		ID:          uuid.NewString(),
		UserID:      Anonymous,
		UserEmail:   Anonymous,
		Category:    r.Category,
		Subject:     r.Subject,
		Description: r.Description,
		Status:      models.IssueStatusNew,
	}
	if sess != nil {
		issue.UserID = sess.UserID
		if sess.Email != "" {
			issue.UserEmail = sess.Email
		}
	}

	path := storage.Join(issuesPath, issue.ID)
	if err := s.store.Set(ctx, path, map[string]any{
		"id":          issue.ID,
		"userId":      issue.UserID,
		"userEmail":   issue.UserEmail,
		"category":    issue.Category,
		"subject":     issue.Subject,
		"description": issue.Description,
		"status":      issue.Status,
		"timestamp":   storage.ServerTimestamp,
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	snap, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := models.Decode(snap, &issue); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("issue reported", slog.String("id", issue.ID), slog.String("category", issue.Category))

	err = s.mailer.Send(ctx, mailer.Message{
		To:      s.recipients,
		Subject: fmt.Sprintf("New %s issue: %s", issue.Category, issue.Subject),
		Text: fmt.Sprintf("Reported by %s (%s)\n\n%s\n\nIssue id: %s",
			issue.UserID, issue.UserEmail, issue.Description, issue.ID),
	})
	if err != nil {
		s.log.Error("failed to send issue notification", slog.String("id", issue.ID), sl.Err(err))
	}

	return &issue, nil
}
