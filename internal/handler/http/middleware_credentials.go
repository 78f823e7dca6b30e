package http

import (
	"net/http"
	"strings"
)

// withCredentialsRelay hands the foreground session cookie to the server
// adapter so background sync passes authenticate as the same user. Requests
// without cookies leave the stored credentials untouched.
func (h *Handler) withCredentialsRelay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie := strings.TrimSpace(r.Header.Get("Cookie")); cookie != "" && cookie != h.adapter.Credentials() {
			h.adapter.SetCredentials(cookie)
		}
		next.ServeHTTP(w, r)
	})
}
