package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// createResetToken issues a reset token for the signed-in user and hands it
// over in the reset_token cookie. The token never appears in the body.
func (h *Handler) createResetToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	token, err := h.services.PasswordResetService.RequestResetToken(ctx, userID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createResetToken")
		return
	}

	h.setResetTokenCookie(w, token.Token)
	utils.WriteMessage(w, app.MsgResetTokenCreated, http.StatusOK)
}

// resetPassword redeems the reset_token cookie. The cookie is cleared only
// after a successful redemption.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var submitted string
	if cookie, err := r.Cookie(resetTokenCookieName); err == nil {
		submitted = cookie.Value
	}

	var req models.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		// a missing token is reported before any payload problem
		if submitted == "" {
			err = service.ErrResetTokenMissing
		}
		h.writeError(w, r, err, "*Handler.resetPassword")
		return
	}

	if err := h.services.PasswordResetService.ResetPassword(ctx, userID, submitted, req.Password); err != nil {
		h.writeError(w, r, err, "*Handler.resetPassword")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", userID).Msg("password was reset")

	h.clearResetTokenCookie(w)
	utils.WriteMessage(w, app.MsgPasswordUpdated, http.StatusOK)
}
