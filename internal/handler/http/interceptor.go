package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/mapster-agent/internal/adapter"
	"github.com/MKhiriev/mapster-agent/internal/assets"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/metrics"
	"github.com/MKhiriev/mapster-agent/models"
)

// intercept answers every request that no agent route claims. The dynamic
// detail page is fetched network-first; everything else is cache-first.
// Transport failures never reach the client: the offline page answers
// instead, and 503 when even that is not cached.
func (h *Handler) intercept(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == assets.DetailPage {
		h.networkFirst(w, r)
		return
	}
	h.cacheFirst(w, r)
}

func (h *Handler) networkFirst(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	resp, err := h.adapter.Fetch(ctx, r)
	if err == nil {
		h.respond(w, r, metrics.StrategyNetworkFirst, metrics.SourceNetwork, resp)
		return
	}
	if errors.Is(err, adapter.ErrRequestTooLarge) {
		http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		return
	}
	log.Debug().Err(err).Str("func", "*Handler.networkFirst").Msg("origin unreachable, falling back to cache")

	if cached, ok := h.services.AssetCache.Match(ctx, assets.DetailPage); ok {
		h.respond(w, r, metrics.StrategyNetworkFirst, metrics.SourceCache, cached)
		return
	}

	h.offline(w, r, metrics.StrategyNetworkFirst)
}

func (h *Handler) cacheFirst(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	if cacheable(r) {
		if cached, ok := h.services.AssetCache.Match(ctx, r.URL.RequestURI()); ok {
			h.respond(w, r, metrics.StrategyCacheFirst, metrics.SourceCache, cached)
			return
		}
	}

	resp, err := h.adapter.Fetch(ctx, r)
	if err == nil {
		h.respond(w, r, metrics.StrategyCacheFirst, metrics.SourceNetwork, resp)
		return
	}
	if errors.Is(err, adapter.ErrRequestTooLarge) {
		http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		return
	}
	log.Debug().Err(err).Str("func", "*Handler.cacheFirst").Msg("origin unreachable, serving offline page")

	h.offline(w, r, metrics.StrategyCacheFirst)
}

func (h *Handler) offline(w http.ResponseWriter, r *http.Request, strategy string) {
	if page, ok := h.services.AssetCache.Match(r.Context(), assets.OfflinePage); ok {
		h.respond(w, r, strategy, metrics.SourceOffline, page)
		return
	}

	logger.FromRequest(r).Warn().
		Str("func", "*Handler.offline").
		Str("url", r.URL.RequestURI()).
		Msg("offline page is not cached")

	metrics.InterceptedResponsesTotal.WithLabelValues(strategy, metrics.SourceUnavailable).Inc()
	http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, strategy, source string, resp models.CachedResponse) {
	metrics.InterceptedResponsesTotal.WithLabelValues(strategy, source).Inc()

	header := w.Header()
	for name, values := range resp.Header {
		if name == "Content-Length" {
			continue
		}
		header[name] = append([]string(nil), values...)
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	if bodyAllowed(status) {
		header.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	}
	w.WriteHeader(status)

	if r.Method == http.MethodHead || !bodyAllowed(status) {
		return
	}
	if _, err := w.Write(resp.Body); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.respond").Msg("error writing intercepted response")
	}
}

// cacheable reports whether r may be answered from the asset cache.
func cacheable(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func bodyAllowed(status int) bool {
	return status >= http.StatusOK && status != http.StatusNoContent && status != http.StatusNotModified
}
