package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier classifies *pgconn.PgError values by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ConstraintName implements [ErrorClassificator].
func (c *PostgresErrorClassifier) ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

// ClassifyPgError maps a SQLSTATE onto a classification:
//
//	23505                 UniqueViolation
//	class 08, class 40    Retryable (connection loss, rollback, deadlock)
//	57P01, 57P02, 57P03   Retryable (server shutting down or starting)
//	anything else         NonRetryable
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case code == pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.IsConnectionException(code), pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.AdminShutdown, code == pgerrcode.CrashShutdown, code == pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
