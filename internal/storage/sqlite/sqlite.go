package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"campusHub/internal/storage/sqldb"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// InitDB opens the database file at path (":memory:" for a throwaway one).
func InitDB(ctx context.Context, path string, log *slog.Logger) (*sqldb.Storage, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open the database: %w", err)
	}

	// one writer at a time; also keeps a :memory: database on a single connection
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open the database: %w", err)
	}

	s, err := sqldb.New(ctx, db, goose.DialectSQLite3, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare the database: %w", err)
	}

	return s, nil
}
