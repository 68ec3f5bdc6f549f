// Package utils holds small helpers shared by the handler and service
// layers: response writers, the session signer, password and reset token
// helpers, id generation, the outbound HTTP client and the request context
// key of the authenticated user.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return "utils context key " + string(c)
}

// UserIDCtxKey stores the authenticated user's id. Set by the auth
// middleware through WithUserID.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user id stored by WithUserID. ok is false
// when the value is missing, empty or not a string.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}
