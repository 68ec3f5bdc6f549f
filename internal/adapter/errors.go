package adapter

import "errors"

var (
	ErrEmptyImageID        = errors.New("image id is empty")
	ErrUnauthorized        = errors.New("image host rejected credentials")
	ErrBadRequest          = errors.New("image host rejected request")
	ErrRateLimited         = errors.New("image host rate limit exceeded")
	ErrHostUnavailable     = errors.New("image host unavailable")
	ErrUnexpectedResult    = errors.New("unexpected image host result")
	ErrUnsupportedProvider = errors.New("unsupported image host provider")
)
