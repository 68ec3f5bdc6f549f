package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/models"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)

// marshalFailureBody is sent when a response value cannot be encoded.
var marshalFailureBody = []byte(`{"message":"internal server error"}`)

// WriteJSON encodes data and writes it with statusCode. When data cannot be
// encoded the client gets a 500 with a generic message body and the
// encoding error is returned for logging.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(marshalFailureBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteMessage writes {"message": message} with statusCode.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// WriteText writes a plain text body with statusCode.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
