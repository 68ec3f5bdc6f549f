package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// getServerVersion answers with the plain version string, or with the full
// build metadata when the client accepts JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	if strings.Contains(r.Header.Get("Accept"), utils.ContentTypeJSON) {
		buildInfo := h.services.AppInfoService.GetBuildInfo(ctx)
		utils.WriteJSON(w, models.VersionResponse{
			Version: serverVersion,
			Date:    buildInfo.BuildDate(),
			Commit:  buildInfo.BuildCommit(),
		}, http.StatusOK)
		return
	}

	utils.WriteText(w, serverVersion, http.StatusOK)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, app.MsgServiceRunning, http.StatusOK)
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgRouteNotFound, http.StatusNotFound)
}
