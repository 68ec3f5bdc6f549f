package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// passwordResetService issues and redeems single-use password-reset tokens.
// Expiry is checked on redemption; nothing sweeps expired tokens.
type passwordResetService struct {
	userRepository  store.UserRepository
	resetTokenStore store.ResetTokenStore
	validator       validators.Validator

	tokenDuration    time.Duration
	passwordHashCost int

	now    func() time.Time
	logger *logger.Logger
}

func NewPasswordResetService(
	userRepository store.UserRepository,
	resetTokenStore store.ResetTokenStore,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) PasswordResetService {
	return &passwordResetService{
		userRepository:   userRepository,
		resetTokenStore:  resetTokenStore,
		validator:        validator,
		tokenDuration:    cfg.ResetTokenDuration,
		passwordHashCost: cfg.PasswordHashCost,
		now:              func() time.Time { return time.Now().UTC() },
		logger:           logger,
	}
}

func (s *passwordResetService) RequestResetToken(ctx context.Context, userID string) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.ResetToken{}, ErrUnauthorized
	}

	value, err := utils.GenerateOpaqueToken(utils.ResetTokenBytes)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.RequestResetToken").Msg("token generation failed")
		return models.ResetToken{}, err
	}

	now := s.now()
	token := models.ResetToken{
		UserID:    userID,
		Token:     value,
		ExpiresAt: now.Add(s.tokenDuration),
		CreatedAt: now,
	}

	if err = s.resetTokenStore.SaveResetToken(ctx, token); err != nil {
		log.Err(err).Str("func", "*passwordResetService.RequestResetToken").Str("user_id", userID).Msg("saving reset token failed")
		return models.ResetToken{}, fmt.Errorf("error saving reset token: %w", err)
	}

	log.Info().Str("user_id", userID).Time("expires_at", token.ExpiresAt).Msg("reset token issued")
	return token, nil
}

// ResetPassword implements [PasswordResetService].
//
// Checks run in a fixed order and none of them mutates state: session,
// token presence, password rules, stored token, token match, expiry. The
// token is then consumed with a conditional delete, so of two concurrent
// redeemers only one proceeds. If the password write fails afterwards the
// token is saved back.
func (s *passwordResetService) ResetPassword(ctx context.Context, userID, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrUnauthorized
	}
	if token == "" {
		return ErrResetTokenMissing
	}
	if err := s.validator.Validate(ctx, models.ResetPasswordRequest{Password: newPassword}); err != nil {
		return err
	}

	stored, err := s.resetTokenStore.FindResetToken(ctx, userID)
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return ErrResetTokenNotFound
	}
	if err != nil {
		return fmt.Errorf("error finding reset token: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored.Token), []byte(token)) != 1 {
		return ErrResetTokenMismatch
	}
	if stored.IsExpired(s.now()) {
		return ErrResetTokenExpired
	}

	hash, err := utils.HashPassword(newPassword, s.passwordHashCost)
	if err != nil {
		return err
	}

	err = s.resetTokenStore.ConsumeResetToken(ctx, userID, stored.Token)
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return ErrResetTokenNotFound
	}
	if err != nil {
		return fmt.Errorf("error consuming reset token: %w", err)
	}

	if err = s.userRepository.UpdateUserPassword(ctx, userID, hash); err != nil {
		log.Err(err).Str("func", "*passwordResetService.ResetPassword").Str("user_id", userID).Msg("password update failed")
		if restoreErr := s.resetTokenStore.SaveResetToken(ctx, stored); restoreErr != nil {
			log.Err(restoreErr).Str("func", "*passwordResetService.ResetPassword").Str("user_id", userID).Msg("failed to restore reset token")
		}
		return fmt.Errorf("error updating password: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("password reset")
	return nil
}
