package slogrollbar

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"campusHub/internal/lib/logger/sl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reported struct {
	level  slog.Level
	msg    string
	extras map[string]interface{}
}

func TestHandlerForwardsErrorsOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var got []reported

	h := NewWithReporter(
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		nil,
		func(level slog.Level, msg string, extras map[string]interface{}) {
			got = append(got, reported{level: level, msg: msg, extras: extras})
		},
	)

	log := slog.New(h).With(slog.String("op", "test.op"))

	log.Info("all good")
	log.Error("toggle failed", sl.Err(errors.New("boom")))

	require.Len(t, got, 1)
	assert.Equal(t, slog.LevelError, got[0].level)
	assert.Equal(t, "toggle failed", got[0].msg)
	assert.Equal(t, "test.op", got[0].extras["op"])
	assert.Equal(t, "boom", got[0].extras["error"])

	assert.Contains(t, buf.String(), "all good")
	assert.Contains(t, buf.String(), "toggle failed")
}

func TestHandlerGroupsPrefixKeys(t *testing.T) {
	t.Parallel()

	var got []reported

	h := NewWithReporter(
		slog.NewJSONHandler(&bytes.Buffer{}, nil),
		slog.LevelWarn,
		func(level slog.Level, msg string, extras map[string]interface{}) {
			got = append(got, reported{level: level, msg: msg, extras: extras})
		},
	)

	slog.New(h).WithGroup("req").Warn("slow", slog.Int("ms", 1200))

	require.Len(t, got, 1)
	assert.EqualValues(t, 1200, got[0].extras["req.ms"])
}
