package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/chatterbox/internal/config"
	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens the SQLite file backend. It is used when the DSN is
// a plain file path, which keeps local development and small deployments
// free of an external database server.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// readers must not block the single writer, and short lock waits are
	// preferable to immediate "database is locked" failures
	_, _ = conn.ExecContext(ctx, `PRAGMA journal_mode=WAL;`)
	_, _ = conn.ExecContext(ctx, `PRAGMA busy_timeout=3000;`)
	_, _ = conn.ExecContext(ctx, `PRAGMA foreign_keys=ON;`)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", cfg.DSN).Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		dialect:            "sqlite3",
		builder:            squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	return db, nil
}
