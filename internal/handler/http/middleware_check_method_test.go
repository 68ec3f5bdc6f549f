// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildMethodCheckRouter() *chi.Mux {
	router := chi.NewRouter()
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Get("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Group(func(r chi.Router) {
		r.Post("/private/items", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
	})

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered GET", http.MethodGet, "/items", http.StatusOK},
		{"registered POST in group", http.MethodPost, "/private/items", http.StatusCreated},
		{"unregistered method", http.MethodDelete, "/items", http.StatusNotFound},
		{"unregistered method in group", http.MethodGet, "/private/items", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := buildMethodCheckRouter()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.JSONEq(t, `{"message":"route not found"}`, rr.Body.String())
			}
		})
	}
}
