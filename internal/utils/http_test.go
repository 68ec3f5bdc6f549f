package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "map", data: map[string]string{"key": "value"}, status: http.StatusOK, wantBody: `{"key":"value"}`},
		{name: "created profile", data: struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		}{ID: "u1", Username: "alice"}, status: http.StatusCreated, wantBody: `{"id":"u1","username":"alice"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "slice", data: []int{1, 2}, status: http.StatusOK, wantBody: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, ContentTypeJSON, w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, ContentTypeJSON, w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"internal server error"}`, w.Body.String())
}

func TestWriteMessage(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteMessage(w, "route not found", http.StatusNotFound)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"route not found"}`, w.Body.String())
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteText(w, "1.2.3", http.StatusOK)
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentTypeText, w.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", w.Body.String())
}
