// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"
)

func TestSignParams_KnownValue(t *testing.T) {
	params := map[string]string{
		"timestamp": "1315060510",
		"public_id": "sample_image",
	}

	got := SignParams(params, "abcd")

	sum := sha1.Sum([]byte("public_id=sample_image&timestamp=1315060510abcd"))
	want := hex.EncodeToString(sum[:])

	if got != want {
		t.Errorf("signature mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestSignParams_SkipsEmptyValues(t *testing.T) {
	withEmpty := SignParams(map[string]string{"public_id": "a", "invalidate": "", "timestamp": "1"}, "s")
	without := SignParams(map[string]string{"public_id": "a", "timestamp": "1"}, "s")

	if withEmpty != without {
		t.Error("empty parameters must not affect the signature")
	}
}

func TestSignParams_DifferentSecrets(t *testing.T) {
	params := map[string]string{"public_id": "a", "timestamp": "1"}

	if SignParams(params, "one") == SignParams(params, "two") {
		t.Error("different secrets must produce different signatures")
	}
}

func TestSignParams_OrderIndependent(t *testing.T) {
	a := SignParams(map[string]string{"b": "2", "a": "1", "c": "3"}, "s")
	b := SignParams(map[string]string{"c": "3", "a": "1", "b": "2"}, "s")

	if a != b {
		t.Error("signature must not depend on map iteration order")
	}
}
