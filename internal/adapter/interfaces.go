// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integration with the external image
// host that stores user avatars.
//
// The primary abstraction is [ImageHost], which decouples the service layer
// from the provider. Two implementations ship with the package: a
// Cloudinary-style REST client ([NewCloudinaryImageHost]) and an
// S3-compatible bucket client ([NewS3ImageHost]). [NewImageHost] picks one
// from configuration.
//
// Error values defined in errors.go let callers match failures with
// [errors.Is] regardless of the provider.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/image_host_mock.go -package=mock

// ImageHost deletes images previously uploaded by clients. Uploads happen
// client-side; the server only references images by their host id.
type ImageHost interface {
	// Delete removes the image identified by id. Deleting an image that
	// does not exist is not an error.
	Delete(ctx context.Context, id string) error
}
