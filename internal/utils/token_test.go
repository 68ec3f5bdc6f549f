package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateOpaqueToken_Length(t *testing.T) {
	token, err := GenerateOpaqueToken(ResetTokenBytes)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Errorf("expected hex string, got %q", token)
	}
}

func TestGenerateOpaqueToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := GenerateOpaqueToken(ResetTokenBytes)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if _, ok := seen[token]; ok {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = struct{}{}
	}
}
