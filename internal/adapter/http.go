package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/mapster-agent/internal/config"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/utils"
	"github.com/MKhiriev/mapster-agent/models"
	"github.com/go-resty/resty/v2"
)

const (
	syncItinerariesPath  = "/api/sync-itineraries"
	checkLoginStatusPath = "/check-login-status"
	lastSyncTimeParam    = "lastSyncTime"

	// maxForwardedBodySize caps request bodies read for forwarding.
	maxForwardedBodySize = 10 << 20
)

// hopHeaders are connection-scoped and never forwarded in either direction.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Proxy-Connection",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	cookie string

	maxBodySize int64

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs a resty implementation of [ServerAdapter].
// It normalises and validates the origin URL from adapterCfg.BaseURL and
// configures the client with the request timeout. Redirects are handed back
// to the browser by the interceptor and reported as [ErrRedirected] by API
// calls. Sessions come only from [ServerAdapter.SetCredentials] and
// forwarded requests.
func NewHTTPServerAdapter(adapterCfg config.AgentAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:      utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		maxBodySize: maxForwardedBodySize,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredentials implements [ServerAdapter].
func (h *httpServerAdapter) SetCredentials(cookie string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cookie = strings.TrimSpace(cookie)
}

// Credentials implements [ServerAdapter].
func (h *httpServerAdapter) Credentials() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cookie
}

// SyncItineraries implements [ServerAdapter]. The watermark is sent in the
// server's "YYYY-MM-DD HH:MM:SS" layout and the response must be a JSON array.
func (h *httpServerAdapter) SyncItineraries(ctx context.Context, since models.Watermark) ([]models.RawItinerary, error) {
	resp, err := h.sessionRequest(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam(lastSyncTimeParam, since.String()).
		Get(syncItinerariesPath)
	if err != nil {
		return nil, fmt.Errorf("sync itineraries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.RawItinerary
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: sync itineraries: %w", ErrDecodingResponse, err)
	}

	return items, nil
}

// CheckLoginStatus implements [ServerAdapter].
func (h *httpServerAdapter) CheckLoginStatus(ctx context.Context) (bool, error) {
	var status models.LoginStatus

	resp, err := h.sessionRequest(ctx).
		SetHeader("Accept", "application/json").
		Get(checkLoginStatusPath)
	if err != nil {
		return false, fmt.Errorf("check login status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return false, fmt.Errorf("%w: login status: %w", ErrDecodingResponse, err)
	}

	return status.IsLoggedIn, nil
}

// Fetch implements [ServerAdapter]. The request's own headers, including its
// cookies, are forwarded unchanged apart from hop-by-hop headers. Bodies
// larger than maxForwardedBodySize are refused with [ErrRequestTooLarge].
func (h *httpServerAdapter) Fetch(ctx context.Context, r *http.Request) (models.CachedResponse, error) {
	req := h.client.R().SetContext(ctx)

	for name, values := range r.Header {
		if skipForwardedHeader(name) {
			continue
		}
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	if r.Body != nil && r.Body != http.NoBody {
		body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodySize+1))
		if err != nil {
			return models.CachedResponse{}, fmt.Errorf("read forwarded body: %w", err)
		}
		if int64(len(body)) > h.maxBodySize {
			return models.CachedResponse{}, fmt.Errorf("forward %s %s: %w", r.Method, r.URL.RequestURI(), ErrRequestTooLarge)
		}
		if len(body) > 0 {
			req.SetBody(body)
		}
	}

	resp, err := req.Execute(r.Method, r.URL.RequestURI())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "httpServerAdapter.Fetch").
			Str("url", r.URL.RequestURI()).
			Msg("origin is unreachable")
		return models.CachedResponse{}, fmt.Errorf("forward %s %s: %w", r.Method, r.URL.RequestURI(), err)
	}

	return toCachedResponse(resp), nil
}

// FetchAsset implements [ServerAdapter].
func (h *httpServerAdapter) FetchAsset(ctx context.Context, path string) (models.CachedResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return models.CachedResponse{}, fmt.Errorf("fetch asset %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CachedResponse{}, fmt.Errorf("fetch asset %s: %w", path, err)
	}

	return toCachedResponse(resp), nil
}

func (h *httpServerAdapter) sessionRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if cookie := h.Credentials(); cookie != "" {
		req.SetHeader("Cookie", cookie)
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req
}

func toCachedResponse(resp *resty.Response) models.CachedResponse {
	header := resp.Header().Clone()
	for _, name := range hopHeaders {
		header.Del(name)
	}

	return models.CachedResponse{
		Status: resp.StatusCode(),
		Header: header,
		Body:   resp.Body(),
	}
}

func skipForwardedHeader(name string) bool {
	switch http.CanonicalHeaderKey(name) {
	case "Host", "Content-Length", "Accept-Encoding":
		return true
	}
	for _, h := range hopHeaders {
		if strings.EqualFold(h, name) {
			return true
		}
	}
	return false
}
