package service

import (
	"github.com/MKhiriev/go-blog-keeper/internal/adapter"
	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

type Services struct {
	AuthService          AuthService
	UserService          UserService
	PasswordResetService PasswordResetService
	AppInfoService       AppInfoService
}

// NewServices wires the services over the storages and the image host.
// Request payloads are validated by decorators before they reach the
// services.
func NewServices(storages *store.Storages, imageHost adapter.ImageHost, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(storages.UserRepository, cfg.App, logger)
	userService := NewUserService(storages.UserRepository, imageHost, cfg.ImageHost.Timeout, logger)

	return &Services{
		AuthService:          NewAuthValidationService(validator).Wrap(authService),
		UserService:          NewUserValidationService(validator).Wrap(userService),
		PasswordResetService: NewPasswordResetService(storages.UserRepository, storages.ResetTokenStore, validator, cfg.App, logger),
		AppInfoService:       appInfoService,
	}, nil
}
