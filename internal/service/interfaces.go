package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	UpdateDetails(ctx context.Context, req models.UpdateDetailsRequest) (models.Profile, error)
	// ReplaceAvatar points the profile at a new image and removes the old
	// one from the image host. The profile is not changed if the old image
	// cannot be removed.
	ReplaceAvatar(ctx context.Context, userID string, update models.AvatarUpdate) (models.Profile, error)
}

type PasswordResetService interface {
	// RequestResetToken issues a fresh token for the user, replacing any
	// previous one.
	RequestResetToken(ctx context.Context, userID string) (models.ResetToken, error)
	// ResetPassword redeems token and sets newPassword. A token can be
	// redeemed once.
	ResetPassword(ctx context.Context, userID, token, newPassword string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
