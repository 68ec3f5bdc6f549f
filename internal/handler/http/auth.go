package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.signup")
		return
	}

	user, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.signup")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err, "*Handler.signup")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, user.Profile(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}

// logout only clears the session cookie. Issued tokens stay valid until they
// expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}
