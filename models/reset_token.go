package models

import "time"

// ResetToken is one outstanding password-reset grant. A user owns at most one
// live token; issuing a new one replaces the previous grant.
type ResetToken struct {
	// UserID identifies the owner and is the primary key of the grant.
	UserID string `json:"user_id"`

	// Token is the opaque random value handed to the client in the
	// reset_token cookie.
	Token string `json:"token"`

	// ExpiresAt is the instant after which the grant can no longer be redeemed.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the issuance instant.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ResetToken model.
func (t ResetToken) TableName() string {
	return "reset_tokens"
}

// IsExpired reports whether the grant is no longer redeemable at now.
func (t ResetToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
