// Package sqldb keeps the document store in a single SQL table of leaf rows. It works with any
// driver sqlx can rebind for; postgres and sqlite are wired in their own packages.
package sqldb

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"campusHub/internal/storage"
	"campusHub/internal/storage/hub"
	"campusHub/internal/storage/tree"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Storage struct {
	DB *sqlx.DB

	clock *tree.Clock
	hub   *hub.Hub
}

var _ storage.Store = (*Storage)(nil)

// New migrates db to the latest schema and returns a store on top of it.
func New(ctx context.Context, db *sqlx.DB, dialect goose.Dialect, log *slog.Logger) (*Storage, error) {
	const op = "storage.sqldb.New"

	if err := Migrate(ctx, db, dialect); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{
		DB:    db,
		clock: &tree.Clock{},
	}
	s.hub = hub.New(s.Get, log)

	return s, nil
}

func Migrate(ctx context.Context, db *sqlx.DB, dialect goose.Dialect) error {
	const op = "storage.sqldb.Migrate"

	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

type node struct {
	Path  string `db:"path"`
	Value string `db:"value"`
}

func (s *Storage) Get(ctx context.Context, path string) (storage.Snapshot, error) {
	const op = "storage.sqldb.Get"

	path, err := storage.Clean(path)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := selectSubtree(ctx, s.DB, path)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	value, err := tree.Assemble(path, rows)
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

func (s *Storage) Update(ctx context.Context, path string, children map[string]any) error {
	const op = "storage.sqldb.Update"

	writes, err := s.prepare(path, children)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, w := range writes {
			if _, err := deleteSubtree(ctx, tx, w.path); err != nil {
				return err
			}
			if len(w.rows) == 0 {
				continue
			}
			if err := deleteAncestors(ctx, tx, w.path); err != nil {
				return err
			}
			if _, err := insertRows(ctx, tx, w.rows, true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.hub.Publish(targets(writes)...)

	return nil
}

var errRollback = errors.New("rollback")

func (s *Storage) SetIfAbsent(ctx context.Context, path string, value any) (bool, error) {
	const op = "storage.sqldb.SetIfAbsent"

	writes, err := s.prepare(path, map[string]any{"": value})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	w := writes[0]

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		existing, err := selectSubtree(ctx, tx, w.path)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return errRollback
		}
		if err := deleteAncestors(ctx, tx, w.path); err != nil {
			return err
		}

		inserted, err := insertRows(ctx, tx, w.rows, false)
		if err != nil {
			return err
		}
		// a concurrent writer got there first
		if inserted != int64(len(w.rows)) {
			return errRollback
		}
		return nil
	})
	if errors.Is(err, errRollback) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.hub.Publish(w.path)

	return true, nil
}

func (s *Storage) Toggle(ctx context.Context, path string, value any) (bool, error) {
	const op = "storage.sqldb.Toggle"

	writes, err := s.prepare(path, map[string]any{"": value})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	w := writes[0]

	var present bool
	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		removed, err := deleteSubtree(ctx, tx, w.path)
		if err != nil {
			return err
		}
		if removed > 0 {
			present = false
			return nil
		}

		if err := deleteAncestors(ctx, tx, w.path); err != nil {
			return err
		}
		if _, err := insertRows(ctx, tx, w.rows, false); err != nil {
			return err
		}
		// either we inserted it or a concurrent toggle did: present either way
		present = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.hub.Publish(w.path)

	return present, nil
}

func (s *Storage) Subscribe(path string, handler storage.Handler) (storage.Subscription, error) {
	return s.hub.Subscribe(path, handler)
}

func (s *Storage) Close() error {
	s.hub.Close()
	return s.DB.Close()
}

func (s *Storage) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

type write struct {
	path string
	rows tree.Rows
}

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

func targets(writes []write) []string {
	paths := make([]string, 0, len(writes))
	for _, w := range writes {
		paths = append(paths, w.path)
	}
	return paths
}

type queryer interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
}

func likeDescendants(path string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(path) + "/%"
}

func selectSubtree(ctx context.Context, q queryer, path string) (tree.Rows, error) {
	var nodes []node

	if path == "" {
		if err := q.SelectContext(ctx, &nodes, `SELECT path, value FROM nodes`); err != nil {
			return nil, fmt.Errorf("failed to select nodes: %w", err)
		}
	} else {
		query := q.Rebind(`SELECT path, value FROM nodes WHERE path = ? OR path LIKE ? ESCAPE '\'`)
		if err := q.SelectContext(ctx, &nodes, query, path, likeDescendants(path)); err != nil {
			return nil, fmt.Errorf("failed to select nodes: %w", err)
		}
	}

	rows := make(tree.Rows, len(nodes))
	for _, n := range nodes {
		rows[n.Path] = json.RawMessage(n.Value)
	}

	return rows, nil
}

func deleteSubtree(ctx context.Context, e execer, path string) (int64, error) {
	var (
		res sql.Result
		err error
	)

	if path == "" {
		res, err = e.ExecContext(ctx, `DELETE FROM nodes`)
	} else {
		query := e.Rebind(`DELETE FROM nodes WHERE path = ? OR path LIKE ? ESCAPE '\'`)
		res, err = e.ExecContext(ctx, query, path, likeDescendants(path))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete nodes: %w", err)
	}

	return res.RowsAffected()
}

func deleteAncestors(ctx context.Context, e execer, path string) error {
	ancestors := tree.Ancestors(path)
	if len(ancestors) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`DELETE FROM nodes WHERE path IN (?)`, ancestors)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := e.ExecContext(ctx, e.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to delete ancestor leaves: %w", err)
	}

	return nil
}

// insertRows writes leaf rows. With overwrite unset an existing row is left alone and not counted.
func insertRows(ctx context.Context, e execer, rows tree.Rows, overwrite bool) (int64, error) {
	query := `INSERT INTO nodes (path, value) VALUES (?, ?) ON CONFLICT (path) DO NOTHING`
	if overwrite {
		query = `INSERT INTO nodes (path, value) VALUES (?, ?) ON CONFLICT (path) DO UPDATE SET value = excluded.value`
	}
	query = e.Rebind(query)

	var inserted int64
	for p, v := range rows {
		res, err := e.ExecContext(ctx, query, p, string(v))
		if err != nil {
			return 0, fmt.Errorf("failed to insert node %s: %w", p, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to insert node %s: %w", p, err)
		}
		inserted += n
	}

	return inserted, nil
}
