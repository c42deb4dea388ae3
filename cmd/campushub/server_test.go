package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"campusHub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownEndsOpenStreams(t *testing.T) {
	t.Parallel()

	streaming := make(chan struct{})
	ended := make(chan struct{})

	stream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		close(streaming)

		<-r.Context().Done()
		close(ended)
	})

	srv := newServer(config.HTTPServer{IdleTimeout: time.Minute}, stream)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/events/1/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	select {
	case <-streaming:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	require.NoError(t, srv.Shutdown(ctx))
	assert.Less(t, time.Since(start), 5*time.Second)

	select {
	case <-ended:
	default:
		t.Fatal("stream handler still running after shutdown")
	}

	assert.True(t, errors.Is(<-served, http.ErrServerClosed))
}
