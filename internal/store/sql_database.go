package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/chatterbox/internal/config"
	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/migrations"
	"github.com/Masterminds/squirrel"
)

// DB wraps the shared *sql.DB handle together with everything the
// repositories need to stay backend-agnostic: a statement builder configured
// with the correct placeholder format, an error classifier for the active
// driver, and the goose dialect used for migrations.
type DB struct {
	*sql.DB
	dialect            string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Open selects the storage backend from the DSN and establishes the
// connection. A "postgres://" (or "postgresql://") URI opens PostgreSQL via
// the pgx driver; any other value is treated as a SQLite file path.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending schema migrations for the active backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
