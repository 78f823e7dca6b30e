// Package http implements the HTTP surface of the offline agent.
//
// Every request the foreground application sends reaches this package. Agent
// endpoints (the message channel under /sw, the read-only offline API under
// /offline/api and /metrics) are routed explicitly; everything else goes
// through the network interceptor, which answers from the asset cache or the
// origin server and falls back to the offline page. Request tracing, access
// logging, session cookie relay and response compression are handled here
// before requests reach the service layer.
package http
