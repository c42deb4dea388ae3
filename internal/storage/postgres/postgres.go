package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"campusHub/internal/config"
	"campusHub/internal/storage/sqldb"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func InitDB(ctx context.Context, dbCfg *config.Database, log *slog.Logger) (*sqldb.Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s, err := sqldb.New(ctx, db, goose.DialectPostgres, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare the database: %w", err)
	}

	return s, nil
}
