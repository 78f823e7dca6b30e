package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the agent to the origin server.
const UserAgent = "mapster-agent"

// HTTPClient is the resty client the agent talks to the origin with.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. It never follows
// redirects and keeps no cookie jar, so every session cookie it sends is one
// the caller set explicitly. A zero timeout means no timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", UserAgent).
		SetCookieJar(nil).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
