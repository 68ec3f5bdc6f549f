package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/adapter"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	imageHost      adapter.ImageHost

	// cleanupTimeout bounds the delete of a new image after an aborted
	// avatar update. That delete does not inherit the request deadline.
	cleanupTimeout time.Duration

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, imageHost adapter.ImageHost, cleanupTimeout time.Duration, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		imageHost:      imageHost,
		cleanupTimeout: cleanupTimeout,
		logger:         logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, ErrUnauthorized
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, mapUserStoreError(err)
	}

	return user.Profile(), nil
}

// UpdateDetails writes the provided profile fields. A new username or email
// must not belong to any other user.
func (s *userService) UpdateDetails(ctx context.Context, req models.UpdateDetailsRequest) (models.Profile, error) {
	if req.UserID == "" {
		return models.Profile{}, ErrUnauthorized
	}

	if req.Email != nil {
		taken, err := s.userRepository.IsEmailTaken(ctx, *req.Email, req.UserID)
		if err != nil {
			return models.Profile{}, fmt.Errorf("error checking email: %w", err)
		}
		if taken {
			return models.Profile{}, ErrEmailTaken
		}
	}

	if req.Username != nil {
		taken, err := s.userRepository.IsUsernameTaken(ctx, *req.Username, req.UserID)
		if err != nil {
			return models.Profile{}, fmt.Errorf("error checking username: %w", err)
		}
		if taken {
			return models.Profile{}, ErrUsernameTaken
		}
	}

	user, err := s.userRepository.UpdateUserDetails(ctx, req)
	if errors.Is(err, store.ErrNothingToUpdate) {
		return models.Profile{}, &validators.Error{Message: validators.ErrNoFieldsToUpdate.Error()}
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateDetails").Str("user_id", req.UserID).Msg("profile update failed")
		return models.Profile{}, mapUserStoreError(err)
	}

	return user.Profile(), nil
}

// ReplaceAvatar implements [UserService].
//
// The old image is deleted from the host before the profile is touched. If
// that fails, the freshly uploaded image is deleted as well (best effort,
// even when the request is already cancelled) and ErrAvatarUpdateAborted is returned with the profile unchanged. A crash
// between the host delete and the profile update leaves the profile pointing
// at a deleted image.
func (s *userService) ReplaceAvatar(ctx context.Context, userID string, update models.AvatarUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Profile{}, ErrUnauthorized
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, mapUserStoreError(err)
	}

	oldID := user.AvatarID
	if oldID != "" && oldID != update.AvatarID {
		if err = s.imageHost.Delete(ctx, oldID); err != nil {
			log.Err(err).Str("func", "*userService.ReplaceAvatar").Str("avatar_id", oldID).Msg("failed to delete old avatar")

			if update.AvatarID != "" {
				if cleanupErr := s.deleteAbandoned(ctx, update.AvatarID); cleanupErr != nil {
					log.Err(cleanupErr).Str("func", "*userService.ReplaceAvatar").Str("avatar_id", update.AvatarID).Msg("failed to delete new avatar after aborted update")
				}
			}

			return models.Profile{}, fmt.Errorf("%w: %w", ErrAvatarUpdateAborted, err)
		}
	}

	updated, err := s.userRepository.UpdateUserAvatar(ctx, userID, update.Avatar, update.AvatarID)
	if err != nil {
		log.Err(err).Str("func", "*userService.ReplaceAvatar").Str("user_id", userID).Msg("avatar update failed")
		return models.Profile{}, mapUserStoreError(err)
	}

	return updated.Profile(), nil
}

// deleteAbandoned removes an image no profile points at. It runs detached
// from ctx cancellation, bounded by cleanupTimeout when one is set.
func (s *userService) deleteAbandoned(ctx context.Context, avatarID string) error {
	ctx = context.WithoutCancel(ctx)
	if s.cleanupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cleanupTimeout)
		defer cancel()
	}

	return s.imageHost.Delete(ctx, avatarID)
}
