package service

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// AuthValidationService checks signup and login payloads before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	return v.inner.Signup(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// UserValidationService checks profile payloads before they reach the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return v.inner.GetProfile(ctx, userID)
}

func (v *UserValidationService) UpdateDetails(ctx context.Context, req models.UpdateDetailsRequest) (models.Profile, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	return v.inner.UpdateDetails(ctx, req)
}

func (v *UserValidationService) ReplaceAvatar(ctx context.Context, userID string, update models.AvatarUpdate) (models.Profile, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Profile{}, err
	}

	return v.inner.ReplaceAvatar(ctx, userID, update)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
