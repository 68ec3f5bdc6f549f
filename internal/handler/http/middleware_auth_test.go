package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrUnsupportedAuthScheme},
		{name: "token without scheme", header: "Token my-jwt-token", wantErr: ErrUnsupportedAuthScheme},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestGetSessionToken(t *testing.T) {
	t.Run("cookie is preferred over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "from-cookie"})
		req.Header.Set("Authorization", "Bearer from-header")

		token, err := getSessionToken(req)
		require.NoError(t, err)
		assert.Equal(t, "from-cookie", token)
	})

	t.Run("header fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer from-header")

		token, err := getSessionToken(req)
		require.NoError(t, err)
		assert.Equal(t, "from-header", token)
	})

	t.Run("nothing provided", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := getSessionToken(req)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("malformed header counts as no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer ")

		_, err := getSessionToken(req)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
		assert.ErrorIs(t, err, ErrEmptyToken)
	})

	t.Run("other scheme counts as no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		_, err := getSessionToken(req)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
		assert.ErrorIs(t, err, ErrUnsupportedAuthScheme)
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("stores user id in context", func(t *testing.T) {
		_, mocks := newTestRouter(t)
		h := &Handler{services: &service.Services{AuthService: mocks.auth}}

		mocks.auth.EXPECT().ParseToken(gomock.Any(), "bearer-token").Return(models.Token{UserID: "u42"}, nil)

		var gotUserID string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = utils.GetUserIDFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.Header.Set("Authorization", "Bearer bearer-token")
		rr := httptest.NewRecorder()
		h.auth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "u42", gotUserID)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, mocks := newTestRouter(t)
		h := &Handler{services: &service.Services{AuthService: mocks.auth}}

		mocks.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		})

		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired"})
		rr := httptest.NewRecorder()
		h.auth(next).ServeHTTP(rr, req)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "invalid or expired token", decodeMessage(t, rr))
	})

	t.Run("request logger carries user id", func(t *testing.T) {
		_, mocks := newTestRouter(t)
		var buf bytes.Buffer
		root := &logger.Logger{Logger: zerolog.New(&buf)}
		h := &Handler{services: &service.Services{AuthService: mocks.auth}, logger: root}

		mocks.auth.EXPECT().ParseToken(gomock.Any(), "session").Return(models.Token{UserID: "u7"}, nil)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Info().Msg("handled")
		})

		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "session"})
		h.withTraceID(h.auth(next)).ServeHTTP(httptest.NewRecorder(), req)

		assert.Contains(t, buf.String(), `"user_id":"u7"`)
		assert.Contains(t, buf.String(), `"trace_id":`)
	})
}
