package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("newpass1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "newpass1" {
		t.Fatal("hash must not equal the plain password")
	}

	if err := ComparePassword(hash, "newpass1"); err != nil {
		t.Errorf("expected password to match, got: %v", err)
	}
}

func TestComparePassword_Mismatch(t *testing.T) {
	hash, _ := HashPassword("secret", bcrypt.MinCost)

	err := ComparePassword(hash, "other")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got: %v", err)
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "secret")
	if err == nil {
		t.Fatal("expected error for malformed hash, got nil")
	}
	if errors.Is(err, ErrPasswordMismatch) {
		t.Error("malformed hash must not be reported as a mismatch")
	}
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("secret", 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error reading cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_LongPasswords(t *testing.T) {
	tests := []struct {
		name     string
		password string
		other    string
	}{
		{
			name:     "100 ascii characters",
			password: strings.Repeat("p", 100),
			other:    strings.Repeat("p", 99) + "q",
		},
		{
			name:     "multibyte characters over 72 bytes",
			password: strings.Repeat("\U0001F600", 30),
			other:    strings.Repeat("\U0001F600", 29) + "\U0001F601",
		},
		{
			name:     "differs only after byte 72",
			password: strings.Repeat("a", 72) + "tail-one",
			other:    strings.Repeat("a", 72) + "tail-two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			if err := ComparePassword(hash, tt.password); err != nil {
				t.Errorf("expected password to match, got: %v", err)
			}
			if err := ComparePassword(hash, tt.other); !errors.Is(err, ErrPasswordMismatch) {
				t.Errorf("expected ErrPasswordMismatch for a different password, got: %v", err)
			}
		})
	}
}
