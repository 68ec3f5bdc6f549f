package http

import (
	"net/http"
	"time"
)

const (
	sessionCookieName    = "token"
	resetTokenCookieName = "reset_token"
)

// cookieSettings holds attributes shared by every cookie the API sets.
// Cookies are always httpOnly and SameSite=Strict. Lifetimes are sent as
// Max-Age only, so nothing here reads the wall clock.
type cookieSettings struct {
	secure           bool
	sessionMaxAge    time.Duration
	resetTokenMaxAge time.Duration
}

func (c cookieSettings) newCookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func (c cookieSettings) expiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, h.cookies.newCookie(sessionCookieName, token, h.cookies.sessionMaxAge))
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, h.cookies.expiredCookie(sessionCookieName))
}

func (h *Handler) setResetTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, h.cookies.newCookie(resetTokenCookieName, token, h.cookies.resetTokenMaxAge))
}

func (h *Handler) clearResetTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, h.cookies.expiredCookie(resetTokenCookieName))
}
