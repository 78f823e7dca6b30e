package http

import (
	"net/http"

	"github.com/MKhiriev/mapster-agent/internal/utils"
)

type versionResponse struct {
	Version      string `json:"version"`
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
	CacheVersion string `json:"cache_version"`
}

type statusResponse struct {
	LoggedIn         bool   `json:"logged_in"`
	SyncTimerRunning bool   `json:"sync_timer_running"`
	CacheVersion     string `json:"cache_version"`
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	_, _ = utils.WriteJSON(w, versionResponse{
		Version:      h.services.AppInfoService.GetAppVersion(ctx),
		BuildVersion: build.BuildVersion(),
		BuildDate:    build.BuildDate(),
		BuildCommit:  build.BuildCommit(),
		CacheVersion: h.services.AssetCache.Version(),
	}, http.StatusOK)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, statusResponse{
		LoggedIn:         h.services.SessionBridge.LoggedIn(),
		SyncTimerRunning: h.services.SyncJob.Running(),
		CacheVersion:     h.services.AssetCache.Version(),
	}, http.StatusOK)
}
