package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.withCredentialsRelay)

	// message channel of the foreground application
	router.Route("/sw", func(r chi.Router) {
		r.Post("/messages", h.postMessage)
		r.Get("/version", h.getVersion)
		r.Get("/status", h.getStatus)
	})

	// read-only offline api over the local store
	router.Route("/offline/api", func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/itineraries", h.listItineraries)
		r.Get("/itineraries/{id}", h.getItinerary)
		r.Get("/itineraries/{id}/navigation", h.getNavigation)
	})

	router.Handle("/metrics", promhttp.Handler())

	router.NotFound(h.intercept)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
