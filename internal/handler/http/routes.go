package http

import (
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(middleware.RequestSize(maxRequestBodySize))
	router.Use(middleware.Compress(5, utils.ContentTypeJSON, utils.ContentTypeText))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Get("/", h.home)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/user/me", h.me)
		r.Patch("/user/details", h.updateDetails)
		r.Patch("/user/avatar", h.updateAvatar)
		r.Post("/user/reset-token", h.createResetToken)
		r.Post("/user/reset-password", h.resetPassword)
	})

	return router
}
