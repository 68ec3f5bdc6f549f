package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// newID assigns ids to new users.
	newID utils.IDFunc

	// passwordHashCost is the bcrypt cost of new password hashes.
	passwordHashCost int

	// sessions signs and verifies session JWTs with the configured issuer,
	// key and lifetime.
	sessions *utils.SessionSigner

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		newID:            utils.NewID,
		passwordHashCost: cfg.PasswordHashCost,
		sessions:         utils.NewSessionSigner(cfg.TokenIssuer, cfg.TokenSignKey, cfg.TokenDuration),
		logger:           logger,
	}
}

// Signup creates a new user account.
//
// Email is checked before username so that a request colliding on both
// reports the email. The password is hashed before anything is written.
//
// Returns the persisted user or:
//   - ErrEmailTaken / ErrUsernameTaken if either value belongs to another user.
//   - A wrapped storage error if the repository call fails.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	emailTaken, err := a.userRepository.IsEmailTaken(ctx, req.Email, "")
	if err != nil {
		return models.User{}, fmt.Errorf("error checking email: %w", err)
	}
	if emailTaken {
		return models.User{}, ErrEmailTaken
	}

	usernameTaken, err := a.userRepository.IsUsernameTaken(ctx, req.Username, "")
	if err != nil {
		return models.User{}, fmt.Errorf("error checking username: %w", err)
	}
	if usernameTaken {
		return models.User{}, ErrUsernameTaken
	}

	user := req.User()
	user.ID = a.newID()
	user.Password, err = utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.User{}, err
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, mapUserStoreError(err)
	}

	log.Info().Str("user_id", created.ID).Msg("user signed up")
	return created, nil
}

// Login authenticates an existing user by username and password.
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	err = utils.ComparePassword(user.Password, req.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateToken issues a session JWT whose subject is the user's id.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.sessions.Sign(user.ID)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.sessions.Verify(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// mapUserStoreError translates repository errors into service errors.
func mapUserStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailTaken
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrUsernameTaken
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	default:
		return err
	}
}
