// Package memory is a process-local document store. Writes are serialized by one lock and
// published to subscribers once committed.
package memory

import (
	"context"
	"fmt"
	"sync"

	"campusHub/internal/storage"
	"campusHub/internal/storage/hub"
	"campusHub/internal/storage/tree"
)

type Storage struct {
	mu     sync.RWMutex
	leaves tree.Rows
	closed bool

	clock *tree.Clock
	hub   *hub.Hub
}

var _ storage.Store = (*Storage)(nil)

func New() *Storage {
	s := &Storage{
		leaves: tree.Rows{},
		clock:  &tree.Clock{},
	}
	s.hub = hub.New(s.Get, nil)

	return s
}

func (s *Storage) Get(_ context.Context, path string) (storage.Snapshot, error) {
	const op = "storage.memory.Get"

	path, err := storage.Clean(path)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return storage.Snapshot{}, fmt.Errorf("%s: %w", op, storage.ErrClosed)
	}

	value, err := tree.Assemble(path, s.subtree(path))
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	return storage.Snapshot{Path: path, Value: value}, nil
}

func (s *Storage) Set(ctx context.Context, path string, value any) error {
	return s.Update(ctx, path, map[string]any{"": value})
}

func (s *Storage) Remove(ctx context.Context, path string) error {
	return s.Set(ctx, path, nil)
}

func (s *Storage) Update(_ context.Context, path string, children map[string]any) error {
	const op = "storage.memory.Update"

	writes, err := s.prepare(path, children)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, storage.ErrClosed)
	}
	for _, w := range writes {
		s.apply(w)
	}
	s.mu.Unlock()

	s.hub.Publish(targets(writes)...)

	return nil
}

func (s *Storage) SetIfAbsent(_ context.Context, path string, value any) (bool, error) {
	const op = "storage.memory.SetIfAbsent"

	writes, err := s.prepare(path, map[string]any{"": value})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	w := writes[0]

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, fmt.Errorf("%s: %w", op, storage.ErrClosed)
	}
	if len(s.subtree(w.path)) > 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.apply(w)
	s.mu.Unlock()

	s.hub.Publish(w.path)

	return true, nil
}

func (s *Storage) Toggle(_ context.Context, path string, value any) (bool, error) {
	const op = "storage.memory.Toggle"

	writes, err := s.prepare(path, map[string]any{"": value})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	w := writes[0]

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, fmt.Errorf("%s: %w", op, storage.ErrClosed)
	}
	present := len(s.subtree(w.path)) == 0
	if !present {
		w.rows = nil
	}
	s.apply(w)
	s.mu.Unlock()

	s.hub.Publish(w.path)

	return present, nil
}

func (s *Storage) Subscribe(path string, handler storage.Handler) (storage.Subscription, error) {
	return s.hub.Subscribe(path, handler)
}

func (s *Storage) Close() error {
	s.hub.Close()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	return nil
}

type write struct {
	path string
	rows tree.Rows
}

// prepare validates and flattens every child write before the lock is taken.
func (s *Storage) prepare(path string, children map[string]any) ([]write, error) {
	base, err := storage.Split(path)
	if err != nil {
		return nil, err
	}

	ts := s.clock.Next()
	writes := make([]write, 0, len(children))

	for rel, value := range children {
		relSegments, err := storage.Split(rel)
		if err != nil {
			return nil, err
		}

		full := storage.Join(append(append([]string{}, base...), relSegments...)...)
		rows, err := tree.Flatten(full, value, ts)
		if err != nil {
			return nil, err
		}

		writes = append(writes, write{path: full, rows: rows})
	}

	if err := storage.Disjoint(targets(writes)); err != nil {
		return nil, err
	}

	return writes, nil
}

// apply replaces the subtree at w.path. Leaves sitting on an ancestor are dropped so the new
// value can hang below them.
func (s *Storage) apply(w write) {
	for p := range s.subtree(w.path) {
		delete(s.leaves, p)
	}

	if len(w.rows) == 0 {
		return
	}

	for _, a := range tree.Ancestors(w.path) {
		delete(s.leaves, a)
	}
	for p, v := range w.rows {
		s.leaves[p] = v
	}
}

func (s *Storage) subtree(path string) tree.Rows {
	rows := tree.Rows{}
	for p, v := range s.leaves {
		if tree.Under(p, path) {
			rows[p] = v
		}
	}
	return rows
}

func targets(writes []write) []string {
	paths := make([]string, 0, len(writes))
	for _, w := range writes {
		paths = append(paths, w.path)
	}
	return paths
}
