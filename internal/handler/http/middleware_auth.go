package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication.
//
// The session JWT is read from the "token" cookie; a bearer token in the
// "Authorization" header is accepted when the cookie is absent. The token is
// validated via [service.AuthService.ParseToken] and, on success, the
// authenticated user's ID is stored in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when no token
// is provided ([service.ErrUnauthorized]) or when the token fails validation
// ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getSessionToken(r)
		if err != nil {
			h.writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				err = fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, err)
			}
			h.writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID)
		ctx = logger.WithUserID(ctx, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getSessionToken returns the session token of the request, preferring the
// cookie over the "Authorization" header.
func getSessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", service.ErrUnauthorized
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", service.ErrUnauthorized, err)
	}

	return tokenString, nil
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "Bearer <token>". The scheme
// is matched case-insensitively.
//
// It returns [ErrInvalidAuthorizationHeader] if the header has fewer than two
// space-separated parts, [ErrUnsupportedAuthScheme] for any other scheme and
// [ErrEmptyToken] if the token part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	if !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrUnsupportedAuthScheme
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
