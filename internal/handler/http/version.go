package http

import (
	"net/http"

	"github.com/MKhiriev/dcms-sync/internal/utils"
	"github.com/MKhiriev/dcms-sync/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok", Timestamp: h.now().UTC()}, http.StatusOK)
}
