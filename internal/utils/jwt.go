package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrSignerMisconfigured = errors.New("session signer needs an issuer, a sign key and a non-zero duration")
	ErrMissingSubject      = errors.New("session token has no subject")
)

var sessionSigningMethod = jwt.SigningMethodHS256

// SessionSigner issues and verifies HS256 session tokens for one issuer.
// Each token carries iss, sub (user id), iat, exp and a random jti.
type SessionSigner struct {
	issuer   string
	key      []byte
	duration time.Duration
	now      func() time.Time
}

// NewSessionSigner returns a signer. A negative duration is accepted and
// yields tokens that are already expired.
func NewSessionSigner(issuer, signKey string, duration time.Duration) *SessionSigner {
	return &SessionSigner{
		issuer:   issuer,
		key:      []byte(signKey),
		duration: duration,
		now:      time.Now,
	}
}

// Sign issues a token for userID.
func (s *SessionSigner) Sign(userID string) (models.Token, error) {
	if s.issuer == "" || len(s.key) == 0 || s.duration == 0 {
		return models.Token{}, ErrSignerMisconfigured
	}
	if userID == "" {
		return models.Token{}, ErrMissingSubject
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
	}

	token := jwt.NewWithClaims(sessionSigningMethod, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing session token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: signed, UserID: userID}, nil
}

// Verify checks signature, algorithm, issuer and expiry of raw and returns
// the token with UserID taken from the subject.
func (s *SessionSigner) Verify(raw string) (models.Token, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithIssuer(s.issuer),
		jwt.WithValidMethods([]string{sessionSigningMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error verifying session token: %w", err)
	}
	if claims.Subject == "" {
		return models.Token{}, ErrMissingSubject
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: raw, UserID: claims.Subject}, nil
}
