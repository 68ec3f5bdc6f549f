package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/migrations"
)

// DB wraps a database/sql pool together with the SQL dialect specifics:
// placeholder format, error classification and the migration set.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassification tells the repositories how a failed statement
// should be reported.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised driver errors.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient backend conditions (lost connection,
	// deadlock, server restart).
	Retryable
	// UniqueViolation marks a duplicate username or email.
	UniqueViolation
)

// ErrorClassificator maps driver errors onto store-level categories.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	// ConstraintName returns the name of the violated constraint, or an
	// empty string if err is not a constraint violation.
	ConstraintName(err error) string
}

// NewConnectDB opens the database selected by the DSN scheme:
// "postgres://" / "postgresql://" for PostgreSQL, "sqlite://" or "file:"
// for SQLite.
func NewConnectDB(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case strings.HasPrefix(dsn, "file:"):
		return NewConnectSQLite(ctx, dsn, log)
	default:
		log.Error().Str("func", "NewConnectDB").Msg("unsupported database uri scheme")
		return nil, ErrUnsupportedDSN
	}
}

// pingOrClose verifies a freshly opened pool and closes it on failure.
func pingOrClose(ctx context.Context, conn *sql.DB) error {
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.placeholder == nil {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// classify turns a driver error into a store error, keeping the cause.
func (db *DB) classify(err error) error {
	if db.errorClassificator == nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		constraint := db.errorClassificator.ConstraintName(err)
		if strings.Contains(constraint, "email") {
			return ErrEmailAlreadyExists
		}
		return ErrUsernameAlreadyExists
	case Retryable:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
