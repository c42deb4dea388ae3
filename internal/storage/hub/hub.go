// Package hub fans committed writes out to snapshot subscribers. Each subscription owns one
// goroutine, so deliveries to a handler are sequential; bursts of writes are coalesced into a
// single delivery of the latest state.
package hub

import (
	"context"
	"log/slog"
	"sync"

	"campusHub/internal/lib/logger/handlers/slogdiscard"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/storage"
)

// Reader loads the current snapshot of a path.
type Reader func(ctx context.Context, path string) (storage.Snapshot, error)

type Hub struct {
	read Reader
	log  *slog.Logger

	mu     sync.Mutex
	subs   map[*subscription]struct{}
	closed bool
}

func New(read Reader, log *slog.Logger) *Hub {
	if log == nil {
		log = slogdiscard.NewDiscardLogger()
	}

	return &Hub{
		read: read,
		log:  log.With(slog.String("component", "storage/hub")),
		subs: make(map[*subscription]struct{}),
	}
}

type subscription struct {
	hub     *Hub
	path    string
	handler storage.Handler

	signal chan struct{}
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// Subscribe registers handler for path. The current snapshot is delivered first.
func (h *Hub) Subscribe(path string, handler storage.Handler) (storage.Subscription, error) {
	path, err := storage.Clean(path)
	if err != nil {
		return nil, err
	}

	s := &subscription{
		hub:     h,
		path:    path,
		handler: handler,
		signal:  make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	s.signal <- struct{}{}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, storage.ErrClosed
	}
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	go s.loop()

	return s, nil
}

// Publish wakes every subscriber whose path is related to one of the written paths.
func (h *Hub) Publish(paths ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subs {
		for _, p := range paths {
			if storage.Related(p, s.path) {
				select {
				case s.signal <- struct{}{}:
				default:
				}
				break
			}
		}
	}
}

// Close cancels every live subscription and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	subs := make([]*subscription, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		s.Cancel()
	}
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

func (s *subscription) loop() {
	defer close(s.done)

	for {
		select {
		case <-s.stop:
			return
		case <-s.signal:
		}

		snap, err := s.hub.read(context.Background(), s.path)
		if err != nil {
			s.hub.log.Error("failed to read snapshot", slog.String("path", s.path), sl.Err(err))
			continue
		}

		select {
		case <-s.stop:
			return
		default:
		}

		s.handler(snap)
	}
}

func (s *subscription) Cancel() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		s.hub.mu.Unlock()

		close(s.stop)
	})

	<-s.done
}
