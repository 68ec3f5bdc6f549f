package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// resetTokenRepository keeps password-reset tokens in the reset_tokens
// table, one row per user.
type resetTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetTokenRepository constructs the SQL-backed [ResetTokenStore].
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenStore {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{db: db, logger: logger}
}

func (r *resetTokenRepository) SaveResetToken(ctx context.Context, token models.ResetToken) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertResetTokenQuery(r.db.builder(), token)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.SaveResetToken").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.SaveResetToken").Msg("error saving reset token")
		return r.db.classify(err)
	}

	return nil
}

func (r *resetTokenRepository) FindResetToken(ctx context.Context, userID string) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResetTokenQuery(r.db.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.FindResetToken").Msg("failed to build query")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token models.ResetToken
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&token.UserID,
		&token.Token,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ResetToken{}, ErrResetTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.FindResetToken").Msg("error scanning reset token")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// ConsumeResetToken deletes the row only while it still holds token, so a
// second redeemer of the same value finds nothing to delete.
func (r *resetTokenRepository) ConsumeResetToken(ctx context.Context, userID, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildConsumeResetTokenQuery(r.db.builder(), userID, token)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.ConsumeResetToken").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.ConsumeResetToken").Msg("error deleting reset token")
		return r.db.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrResetTokenNotFound
	}

	return nil
}
