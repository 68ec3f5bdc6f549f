package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// UserRepository is the credential store. It owns user records; callers
// borrow them by id for the duration of one request.
type UserRepository interface {
	// CreateUser persists a new user. The id, password hash and timestamps
	// must already be set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// IsUsernameTaken and IsEmailTaken report whether another user holds the
	// value. excludeUserID, when not empty, is ignored in the check.
	IsUsernameTaken(ctx context.Context, username, excludeUserID string) (bool, error)
	IsEmailTaken(ctx context.Context, email, excludeUserID string) (bool, error)

	UpdateUserDetails(ctx context.Context, update models.UpdateDetailsRequest) (models.User, error)
	// UpdateUserAvatar stores the avatar URL and host reference. An empty
	// avatarID is stored as NULL.
	UpdateUserAvatar(ctx context.Context, userID, avatar, avatarID string) (models.User, error)
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error
}

// ResetTokenStore keeps at most one password-reset token per user.
type ResetTokenStore interface {
	// SaveResetToken stores token, replacing any previous token of the same
	// user in a single write.
	SaveResetToken(ctx context.Context, token models.ResetToken) error

	// FindResetToken returns the stored token of the user, expired or not.
	// Returns ErrResetTokenNotFound when none is stored.
	FindResetToken(ctx context.Context, userID string) (models.ResetToken, error)

	// ConsumeResetToken deletes the user's token only if it still equals
	// token. Returns ErrResetTokenNotFound when nothing was deleted, so that
	// of two concurrent redeemers exactly one succeeds.
	ConsumeResetToken(ctx context.Context, userID, token string) error
}
