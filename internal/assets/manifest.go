// Package assets holds the build-time manifest of the static assets the agent
// caches for offline use.
package assets

const (
	// DefaultVersion is the cache generation tag baked into this build.
	DefaultVersion = "mapster-cache-v1"

	// OfflinePage is served when neither the cache nor the network can answer.
	OfflinePage = "/static/html/offline.html"

	// DetailPage is the offline itinerary detail page. It is fetched
	// network-first because it renders per-itinerary content.
	DetailPage = "/static/html/view_itinerary_offline.html"
)

var staticURLs = []string{
	"/static/manifest.json",
	"/static/css/base.css",
	"/static/css/login.css",
	"/static/css/signup.css",
	"/static/css/myitineraries.css",
	"/static/css/create_itinerary.css",
	"/static/css/view_itinerary.css",
	"/static/css/index.css",
	"/static/css/leaflet-gesture-handling.min.css",
	"/static/css/leaflet.css",
	"/static/css/bootstrap.min.css",
	"/static/css/images/marker-shadow.png",
	"/static/css/images/markers-shadow.png",
	"/static/css/images/marker-icon.png",
	"/static/js/login.js",
	"/static/js/signup.js",
	"/static/js/base.js",
	"/static/js/create_itinerary.js",
	"/static/js/myitineraries.js",
	"/static/js/view_itinerary.js",
	"/static/js/index.js",
	"/static/js/myitineraries_offline.js",
	"/static/js/view_itinerary_offline.js",
	"/static/js/leaflet.js",
	"/static/js/leaflet-gesture-handling.js",
	"/static/js/Sortable.min.js",
	"/static/js/html2canvas.min.js",
	"/static/js/bootstrap.bundle.min.js",
	"/static/js/dexie.min.js",
	"/static/icons/download-icon.svg",
	"/static/icons/bin-icon.svg",
	"/static/icons/edit-icon.svg",
	"/static/icons/likes-icon.svg",
	"/static/icons/views-icon.svg",
	"/static/icons/add-icon.svg",
	"/static/icons/send-icon.svg",
	"/static/icons/walking-icon.svg",
	"/static/icons/car-icon.svg",
	"/static/icons/biking-icon.svg",
	"/static/icons/user-icon.svg",
	"/static/icons/unlike-icon.svg",
	"/static/icons/calendar-icon.svg",
	"/static/icons/icon-192x192.png",
	"/static/icons/icon-256x256.png",
	"/static/icons/icon-384x384.png",
	"/static/icons/icon-512x512.png",
	"/static/icons/transp-icon-256x256.png",
	"/static/icons/navigate-icon.svg",
	"/static/icons/google-logo.png",
	"/static/icons/offline-icon.svg",
	"/static/html/myitineraries_offline.html",
	OfflinePage,
	DetailPage,
}

// Manifest is a versioned list of asset paths plus the offline fallback page.
type Manifest struct {
	Version     string
	URLs        []string
	OfflinePage string
	DetailPage  string
}

// Default returns the manifest compiled into the agent.
func Default() Manifest {
	urls := make([]string, len(staticURLs))
	copy(urls, staticURLs)

	return Manifest{
		Version:     DefaultVersion,
		URLs:        urls,
		OfflinePage: OfflinePage,
		DetailPage:  DetailPage,
	}
}

// WithVersion returns a copy of m tagged with version. An empty version keeps
// the current tag.
func (m Manifest) WithVersion(version string) Manifest {
	if version != "" {
		m.Version = version
	}
	return m
}

// InstallURLs returns every path fetched at install: the manifest URLs and the
// offline page, each once, in manifest order.
func (m Manifest) InstallURLs() []string {
	seen := make(map[string]struct{}, len(m.URLs)+1)
	out := make([]string, 0, len(m.URLs)+1)

	add := func(u string) {
		if u == "" {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}

	for _, u := range m.URLs {
		add(u)
	}
	add(m.OfflinePage)

	return out
}
