// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the blog API's request payloads (signup, login,
// profile details, avatar and password reset) before they reach the
// services. A failed check is reported as *Error, whose Message is safe to
// send to the client as is.
package validators

import "context"

// Validator checks a request payload. When fields are given only those
// struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
