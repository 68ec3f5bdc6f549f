// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the transport layer when reading credentials and
// request bodies. Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthScheme is returned when the "Authorization" header
	// uses a scheme other than Bearer.
	ErrUnsupportedAuthScheme = errors.New("unsupported `Authorization` scheme")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidRequestBody is returned when the request body is not valid
	// JSON for the expected payload.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrRequestBodyTooLarge is returned when the request body exceeds
	// maxRequestBodySize.
	ErrRequestBodyTooLarge = errors.New("request entity too large")
)
