// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

var errRouteFound = errors.New("route found")

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it answers 404 {"message":"route not found"}
// for a method the matched path does not handle, so that the existence of
// the path is not revealed. Requests whose method is registered for the
// exact path are forwarded to the router.
//
// Registered routes are discovered with [chi.Walk], so routes declared in
// groups are taken into account. Parameterised segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if method == requestedHTTPMethod && route == requestedURL {
				return errRouteFound
			}
			return nil
		})
		if !errors.Is(err, errRouteFound) {
			utils.WriteMessage(w, app.MsgRouteNotFound, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
