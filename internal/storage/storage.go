// Package storage defines the path-addressed document store the application keeps all of its
// records in, together with the snapshot and subscription types shared by every backend.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound    = errors.New("node not found")
	ErrInvalidPath = errors.New("invalid path")
	ErrClosed      = errors.New("store is closed")
)

// ServerTimestamp is replaced by the store with its own clock (milliseconds since epoch)
// when it is written anywhere inside a value.
var ServerTimestamp = map[string]any{".sv": "timestamp"}

// Snapshot is the state of one node and its subtree at a point in time.
type Snapshot struct {
	Path  string
	Value json.RawMessage
}

// Exists reports whether the node held a value.
func (s Snapshot) Exists() bool {
	return len(s.Value) > 0 && string(s.Value) != "null"
}

// Decode unmarshals the snapshot value into v. Decoding an absent node returns ErrNotFound.
func (s Snapshot) Decode(v any) error {
	if !s.Exists() {
		return ErrNotFound
	}
	return json.Unmarshal(s.Value, v)
}

// Handler receives snapshots from a subscription.
type Handler func(Snapshot)

// Subscription is a cancellation token. Once Cancel returns, the handler is never invoked again.
// Cancel must not be called from inside the handler itself.
type Subscription interface {
	Cancel()
}

type Store interface {
	Get(ctx context.Context, path string) (Snapshot, error)
	// Set replaces the subtree at path. A nil value removes it.
	Set(ctx context.Context, path string, value any) error
	// Update writes every child (relative path -> value) in one atomic step. Nil removes a child.
	Update(ctx context.Context, path string, children map[string]any) error
	Remove(ctx context.Context, path string) error
	// SetIfAbsent writes value only if nothing exists at path and reports whether it did.
	SetIfAbsent(ctx context.Context, path string, value any) (bool, error)
	// Toggle atomically adds value at path when absent or removes it when present,
	// returning whether the node exists afterwards.
	Toggle(ctx context.Context, path string, value any) (bool, error)
	Subscribe(path string, handler Handler) (Subscription, error)
	Close() error
}

// Join builds a path from segments.
func Join(segments ...string) string {
	return strings.Join(segments, "/")
}

// Split validates path and returns its segments. The root is the empty path.
func Split(path string) ([]string, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil, nil
	}

	segments := strings.Split(path, "/")
	for _, seg := range segments {
		if seg == "" || strings.ContainsAny(seg, ".#$[]") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}

	return segments, nil
}

// Clean validates path and returns it in canonical form.
func Clean(path string) (string, error) {
	segments, err := Split(path)
	if err != nil {
		return "", err
	}
	return Join(segments...), nil
}

// Related reports whether a write at a may change what a subscriber at b sees:
// equal paths, or one being an ancestor of the other.
func Related(a, b string) bool {
	if a == b || a == "" || b == "" {
		return true
	}
	return strings.HasPrefix(a, b+"/") || strings.HasPrefix(b, a+"/")
}

// Disjoint rejects a multi-path write in which one target equals or contains another.
func Disjoint(paths []string) error {
	for i := range paths {
		for j := i + 1; j < len(paths); j++ {
			if Related(paths[i], paths[j]) {
				return fmt.Errorf("%w: %q overlaps %q", ErrInvalidPath, paths[i], paths[j])
			}
		}
	}
	return nil
}
