package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ResetTokenBytes is the amount of random bytes behind one reset token.
const ResetTokenBytes = 32

// GenerateOpaqueToken returns n bytes from crypto/rand, hex encoded.
func GenerateOpaqueToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
