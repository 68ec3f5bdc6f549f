package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
)

const internalServerErrorMessage = app.MsgInternalServerError

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody:          http.StatusBadRequest,
	validators.ErrValidation:       http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,
	ErrRequestBodyTooLarge:         http.StatusRequestEntityTooLarge,

	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,

	service.ErrResetTokenMissing:  http.StatusForbidden,
	service.ErrResetTokenNotFound: http.StatusForbidden,
	service.ErrResetTokenMismatch: http.StatusForbidden,
	service.ErrResetTokenExpired:  http.StatusForbidden,

	service.ErrUserNotFound: http.StatusNotFound,

	service.ErrEmailTaken:    http.StatusConflict,
	service.ErrUsernameTaken: http.StatusConflict,

	service.ErrAvatarUpdateAborted: http.StatusInternalServerError,
}

// statusFromError resolves the HTTP status and the client-facing message for
// err. Messages of unmapped errors are never exposed.
func statusFromError(err error) (int, string) {
	var validationErr *validators.Error
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, internalServerErrorMessage
}

// writeError logs err with the request-scoped logger and writes the mapped
// {"message": "..."} response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteMessage(w, message, status)
}
