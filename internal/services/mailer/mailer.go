// Package mailer sends notification emails through SendGrid, or only logs them when no API key
// is configured.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	defaultHost = "https://api.sendgrid.com"
	endpoint    = "/v3/mail/send"
)

type Message struct {
	To      []string
	Subject string
	Text    string
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Mailer
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SendGrid struct {
	key        string
	host       string
	from       *sgmail.Email
	subjPrefix string
}

var _ Mailer = (*SendGrid)(nil)

func NewSendGrid(key, appName, fromEmail string) *SendGrid {
	return &SendGrid{
		key:        key,
		host:       defaultHost,
		from:       sgmail.NewEmail(appName, fromEmail),
		subjPrefix: "[" + appName + "] ",
	}
}

func (s *SendGrid) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = s.subjPrefix + msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail("", to))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Text))

	return m
}

func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	const op = "mailer.SendGrid.Send"

	if len(msg.To) == 0 {
		return nil
	}

	req := sendgrid.GetRequest(s.key, endpoint, s.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s: status %d: %s", op, res.StatusCode, strings.TrimSpace(res.Body))
	}

	return nil
}

// Log writes messages to the logger instead of sending them.
type Log struct {
	log *slog.Logger
}

var _ Mailer = (*Log)(nil)

func NewLog(log *slog.Logger) *Log {
	return &Log{log: log.With(slog.String("component", "mailer"))}
}

func (l *Log) Send(_ context.Context, msg Message) error {
	l.log.Info("email not sent, no mail provider configured",
		slog.Any("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
