package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/mock"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validSessionToken = "valid-session-token"

type testServices struct {
	auth  *mock.MockAuthService
	user  *mock.MockUserService
	reset *mock.MockPasswordResetService
	info  *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Environment:        config.EnvironmentProduction,
			TokenDuration:      7 * 24 * time.Hour,
			ResetTokenDuration: 15 * time.Minute,
		},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

// newTestRouter builds the full router over gomock services.
func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		auth:  mock.NewMockAuthService(ctrl),
		user:  mock.NewMockUserService(ctrl),
		reset: mock.NewMockPasswordResetService(ctrl),
		info:  mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:          mocks.auth,
		UserService:          mocks.user,
		PasswordResetService: mocks.reset,
		AppInfoService:       mocks.info,
	}

	return NewHandler(services, testConfig(), logger.Nop()).Init(), mocks
}

// expectSession makes the session token resolve to userID.
func (m testServices) expectSession(userID string) {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), validSessionToken).
		Return(models.Token{UserID: userID}, nil)
}

func doRequest(router http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func sessionCookie() *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: validSessionToken}
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Message
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func testProfileUser() models.User {
	return models.User{
		ID:        "0192b7c4-0000-7000-8000-000000000001",
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Password:  "$2a$04$hash",
		AvatarID:  "avatars/jdoe",
		Avatar:    "https://img.example.com/jdoe.png",
		Firstname: "John",
		Surname:   "Doe",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}
