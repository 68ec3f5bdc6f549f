package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
)

// NewImageHost builds the [ImageHost] selected by cfg.Provider. Every call
// made through it is bounded by cfg.Timeout.
func NewImageHost(ctx context.Context, cfg config.ImageHost) (ImageHost, error) {
	switch cfg.Provider {
	case config.ImageHostCloudinary:
		return NewCloudinaryImageHost(cfg.Cloudinary, cfg.Timeout), nil
	case config.ImageHostS3:
		host, err := NewS3ImageHost(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return withTimeout(host, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}
}

// timeoutImageHost bounds every call of the wrapped host.
type timeoutImageHost struct {
	next    ImageHost
	timeout time.Duration
}

func withTimeout(host ImageHost, timeout time.Duration) ImageHost {
	if timeout <= 0 {
		return host
	}
	return &timeoutImageHost{next: host, timeout: timeout}
}

func (h *timeoutImageHost) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	return h.next.Delete(ctx, id)
}
