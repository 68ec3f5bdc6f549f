package utils

import "github.com/google/uuid"

// IDFunc returns a fresh unique identifier on every call.
type IDFunc func() string

// NewID returns a UUIDv7 string. v7 ids sort by creation time, which keeps
// primary key inserts append-only; a random v4 is returned if the v7
// generator fails.
func NewID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}

	return uuid.NewString()
}
