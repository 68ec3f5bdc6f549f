package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
)

// maxRequestBodySize caps every request body at 100 KiB.
const maxRequestBodySize = 100 << 10

type Handler struct {
	services *service.Services

	cookies        cookieSettings
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cookies: cookieSettings{
			secure:           !cfg.App.IsDevelopment(),
			sessionMaxAge:    cfg.App.TokenDuration,
			resetTokenMaxAge: cfg.App.ResetTokenDuration,
		},
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

// decodeJSON reads the request body into dst. The body is limited by the
// RequestSize middleware; hitting that limit yields ErrRequestBodyTooLarge.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: %w", ErrRequestBodyTooLarge, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}
