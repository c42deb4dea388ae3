// Package tree converts JSON documents to and from leaf rows: one row per scalar or array,
// keyed by its full slash-separated path. Objects only exist through their leaves, so an empty
// object is never stored.
package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"campusHub/internal/storage"
)

// Rows maps a full node path to its JSON-encoded leaf value.
type Rows map[string]json.RawMessage

// Flatten turns value written at base into leaf rows. Server timestamp placeholders are
// replaced by ts. A nil value, or one with no leaves, yields no rows.
func Flatten(base string, value any, ts int64) (Rows, error) {
	const op = "storage.tree.Flatten"

	rows := Rows{}
	if value == nil {
		return rows, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := walk(rows, base, generic, ts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func walk(rows Rows, path string, v any, ts int64) error {
	switch node := v.(type) {
	case nil:
		return nil
	case map[string]any:
		if isServerTimestamp(node) {
			rows[path] = json.RawMessage(fmt.Sprintf("%d", ts))
			return nil
		}
		for key, child := range node {
			if key == "" || strings.ContainsAny(key, "/.#$[]") {
				return fmt.Errorf("%w: key %q", storage.ErrInvalidPath, key)
			}
			if err := walk(rows, storage.Join(nonEmpty(path, key)...), child, ts); err != nil {
				return err
			}
		}
		return nil
	default:
		raw, err := json.Marshal(node)
		if err != nil {
			return err
		}
		rows[path] = raw
		return nil
	}
}

func nonEmpty(path, key string) []string {
	if path == "" {
		return []string{key}
	}
	return []string{path, key}
}

func isServerTimestamp(m map[string]any) bool {
	if len(m) != 1 {
		return false
	}
	sv, ok := m[".sv"].(string)
	return ok && sv == "timestamp"
}

// Assemble rebuilds the value at base from the leaf rows at or below it.
// It returns nil when there are none.
func Assemble(base string, rows Rows) (json.RawMessage, error) {
	const op = "storage.tree.Assemble"

	if len(rows) == 0 {
		return nil, nil
	}
	if leaf, ok := rows[base]; ok {
		return leaf, nil
	}

	root := map[string]any{}

	paths := make([]string, 0, len(rows))
	for p := range rows {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		rel := p
		if base != "" {
			rel = strings.TrimPrefix(p, base+"/")
		}

		segments := strings.Split(rel, "/")
		node := root
		for _, seg := range segments[:len(segments)-1] {
			next, ok := node[seg].(map[string]any)
			if !ok {
				next = map[string]any{}
				node[seg] = next
			}
			node = next
		}
		node[segments[len(segments)-1]] = rows[p]
	}

	raw, err := json.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return raw, nil
}

// Under reports whether p is base itself or one of its descendants.
func Under(p, base string) bool {
	return base == "" || p == base || strings.HasPrefix(p, base+"/")
}

// Ancestors lists the proper ancestors of p, nearest last, excluding the root.
func Ancestors(p string) []string {
	var out []string
	for i := 0; i < len(p); i++ {
		if p[i] == '/' {
			out = append(out, p[:i])
		}
	}
	return out
}

// Clock hands out strictly increasing millisecond timestamps.
type Clock struct {
	mu   sync.Mutex
	last int64
	Now  func() time.Time
}

func (c *Clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	ms := now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms

	return ms
}
