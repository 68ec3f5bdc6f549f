package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	profile, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.me")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.UpdateDetailsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.updateDetails")
		return
	}
	req.UserID, _ = utils.GetUserIDFromContext(ctx)

	profile, err := h.services.UserService.UpdateDetails(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateDetails")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.AvatarUpdate
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.updateAvatar")
		return
	}
	userID, _ := utils.GetUserIDFromContext(ctx)

	profile, err := h.services.UserService.ReplaceAvatar(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateAvatar")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
