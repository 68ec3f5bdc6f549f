package service

import "errors"

// Session and credential errors.
var (
	ErrUnauthorized            = errors.New("unauthorized, no token provided")
	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrInvalidCredentials      = errors.New("invalid credentials")
)

// Account errors.
var (
	ErrEmailTaken    = errors.New("email is already in use")
	ErrUsernameTaken = errors.New("username is already in use")
	ErrUserNotFound  = errors.New("user not found")

	ErrAvatarUpdateAborted = errors.New("failed to delete old avatar, update aborted")
)

// Password reset errors. All of them leave the stored state untouched.
var (
	ErrResetTokenMissing  = errors.New("reset token is missing")
	ErrResetTokenNotFound = errors.New("reset token not found")
	ErrResetTokenMismatch = errors.New("reset token does not match")
	ErrResetTokenExpired  = errors.New("reset token has expired")
)

var ErrVersionIsNotSpecified = errors.New("app version is not specified")
