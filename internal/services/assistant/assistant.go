// Package assistant answers chat messages in the assistant thread. Reply never fails: transient
// overload of the text-generation backend is retried with linear backoff and every other outcome
// degrades to a fixed message.
package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"campusHub/internal/lib/logger/sl"
)

const Persona = "You're like, the ultimate bestie, here to help out when things get real. " +
	"Keep it chill, use some slang, but also be super supportive and give actually helpful advice. " +
	"Someone's coming to you in a crisis, so be a real one. 🤙 Don't be overly formal or robotic. " +
	"Keep your responses concise and easy to read."

const (
	FallbackGeneric    = "Sorry, I couldn't come up with a response right now. Try again!"
	FallbackOverloaded = "Sorry, the AI service is temporarily overloaded. Please try again in a few minutes!"
)

var (
	// ErrOverloaded is the transient signal worth retrying.
	ErrOverloaded  = errors.New("text generation backend is overloaded")
	ErrUnavailable = errors.New("text generation backend is not configured")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Generator
type Generator interface {
	Generate(ctx context.Context, persona, utterance string) (string, error)
}

// Offline is used when no backend is configured.
type Offline struct{}

func (Offline) Generate(context.Context, string, string) (string, error) {
	return "", ErrUnavailable
}

type Options struct {
	// Persona defaults to Persona.
	Persona        string
	MaxAttempts    int
	BackoffStep    time.Duration
	RequestTimeout time.Duration
}

type Responder struct {
	log  *slog.Logger
	gen  Generator
	opts Options

	wait func(ctx context.Context, d time.Duration) error
}

func NewResponder(log *slog.Logger, gen Generator, opts Options) *Responder {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.BackoffStep < 0 {
		opts.BackoffStep = 0
	}
	if opts.Persona == "" {
		opts.Persona = Persona
	}

	return &Responder{
		log:  log.With(slog.String("component", "services/assistant")),
		gen:  gen,
		opts: opts,
		wait: wait,
	}
}

// Reply returns the assistant's answer to utterance, or one of the fallback messages.
func (r *Responder) Reply(ctx context.Context, utterance string) string {
	const op = "services.assistant.Reply"

	log := r.log.With(slog.String("op", op))

	for attempt := 1; attempt <= r.opts.MaxAttempts; attempt++ {
		out, err := r.generate(ctx, utterance)
		if err == nil {
			if strings.TrimSpace(out) == "" {
				log.Warn("empty reply from backend", slog.Int("attempt", attempt))
				return FallbackOverloaded
			}
			return out
		}

		if !errors.Is(err, ErrOverloaded) {
			if ctx.Err() != nil {
				log.Info("reply abandoned", sl.Err(ctx.Err()))
				return FallbackOverloaded
			}
			log.Error("failed to generate reply", sl.Err(err))
			return FallbackGeneric
		}

		if attempt == r.opts.MaxAttempts {
			break
		}

		backoff := r.opts.BackoffStep * time.Duration(attempt)
		log.Warn("backend overloaded, backing off",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
		)

		if err := r.wait(ctx, backoff); err != nil {
			log.Info("reply abandoned", sl.Err(err))
			return FallbackOverloaded
		}
	}

	log.Error("backend still overloaded, giving up", slog.Int("attempts", r.opts.MaxAttempts))

	return FallbackOverloaded
}

func (r *Responder) generate(ctx context.Context, utterance string) (string, error) {
	if r.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.RequestTimeout)
		defer cancel()
	}

	return r.gen.Generate(ctx, r.opts.Persona, utterance)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
