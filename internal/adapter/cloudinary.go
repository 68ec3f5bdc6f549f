package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
)

const (
	destroyResultOK       = "ok"
	destroyResultNotFound = "not found"
)

type destroyResponse struct {
	Result string `json:"result"`
}

type cloudinaryImageHost struct {
	client *utils.HTTPClient

	cloudName string
	apiKey    string
	apiSecret string

	now func() time.Time
}

// NewCloudinaryImageHost constructs an [ImageHost] talking to the
// Cloudinary upload API (or any service exposing the same destroy
// endpoint) at cfg.BaseURL. Every call is bounded by timeout.
func NewCloudinaryImageHost(cfg config.Cloudinary, timeout time.Duration) ImageHost {
	return &cloudinaryImageHost{
		client:    utils.NewHTTPClient(cfg.BaseURL, timeout),
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		now:       time.Now,
	}
}

// Delete implements [ImageHost]. It POSTs a signed destroy request to
// /v1_1/{cloud}/image/destroy. Results "ok" and "not found" are both
// treated as success.
func (c *cloudinaryImageHost) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyImageID
	}
	log := logger.FromContext(ctx)

	params := map[string]string{
		"public_id": id,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	signature := utils.SignParams(params, c.apiSecret)

	var result destroyResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("cloud", c.cloudName).
		SetFormData(map[string]string{
			"public_id": params["public_id"],
			"timestamp": params["timestamp"],
			"api_key":   c.apiKey,
			"signature": signature,
		}).
		SetResult(&result).
		Post("/v1_1/{cloud}/image/destroy")
	if err != nil {
		log.Err(err).Str("func", "*cloudinaryImageHost.Delete").Str("image_id", id).Msg("destroy request failed")
		return fmt.Errorf("%w: %w", ErrHostUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*cloudinaryImageHost.Delete").Str("image_id", id).Msg("destroy request rejected")
		return err
	}

	switch result.Result {
	case destroyResultOK, destroyResultNotFound:
		log.Debug().Str("func", "*cloudinaryImageHost.Delete").Str("image_id", id).Str("result", result.Result).Msg("image deleted")
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnexpectedResult, result.Result)
	}
}
