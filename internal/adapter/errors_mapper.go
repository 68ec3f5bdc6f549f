package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody is the shape of an error reply of the image host REST API:
// {"error": {"message": "..."}}.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// mapHTTPError returns nil for 2xx replies and a categorised error for the
// rest. The host's own message is kept in the error text.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	return statusError(resp.StatusCode(), replyMessage(resp.Body()))
}

func statusError(status int, message string) error {
	var category error
	switch {
	case status == http.StatusBadRequest:
		category = ErrBadRequest
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		category = ErrUnauthorized
	case status == http.StatusTooManyRequests:
		category = ErrRateLimited
	case status >= http.StatusInternalServerError:
		category = ErrHostUnavailable
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResult, status, message)
	}

	return fmt.Errorf("%w: http %d: %s", category, status, message)
}

// replyMessage extracts error.message from a JSON reply, falling back to the
// raw body.
func replyMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}

	if raw := strings.TrimSpace(string(body)); raw != "" {
		return raw
	}
	return "empty reply"
}
