package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// SignParams computes the request signature expected by Cloudinary-style
// image host APIs.
//
// Behavior:
//   - Drops parameters with empty values
//   - Sorts the remaining parameters by name
//   - Joins them as "k1=v1&k2=v2", appends the secret
//   - Returns the hex-encoded SHA-1 digest of the result
//
// Parameters:
//
//	params - request parameters to be signed (api_key and file must not be included)
//	secret - API secret shared with the image host
//
// Example usage:
//
//	sig := utils.SignParams(map[string]string{"public_id": "a", "timestamp": "1"}, "secret")
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
