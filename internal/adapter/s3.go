package adapter

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

// s3API is the subset of *s3.Client used by the image host.
type s3API interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3ImageHost struct {
	client s3API
	bucket string
}

// NewS3ImageHost constructs an [ImageHost] over an S3-compatible bucket.
// Image ids are object keys. A non-empty cfg.Endpoint points the client at
// MinIO, R2 or a similar service using path-style addressing.
func NewS3ImageHost(ctx context.Context, cfg config.S3) (ImageHost, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("error loading s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3ImageHost(client, cfg.Bucket), nil
}

func newS3ImageHost(client s3API, bucket string) *s3ImageHost {
	return &s3ImageHost{client: client, bucket: bucket}
}

// Delete implements [ImageHost]. S3 reports success for missing keys.
func (h *s3ImageHost) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyImageID
	}

	_, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ImageHost.Delete").Str("image_id", id).Msg("delete object failed")
		return fmt.Errorf("%w: %w", ErrHostUnavailable, err)
	}

	return nil
}
