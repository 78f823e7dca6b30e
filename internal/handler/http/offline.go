package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/internal/utils"
	"github.com/MKhiriev/mapster-agent/models"
	"github.com/go-chi/chi/v5"
)

// listItineraries serves the active projection of the local store. Store
// failures surface as an empty list.
func (h *Handler) listItineraries(w http.ResponseWriter, r *http.Request) {
	items := h.services.ItineraryStore.Active(r.Context())
	if _, err := utils.WriteJSON(w, items, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listItineraries").Msg("error writing response")
	}
}

func (h *Handler) getItinerary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := itineraryID(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItineraryStore.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getItinerary").Str("id", id).Msg("error getting itinerary")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, item, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getItinerary").Msg("error writing response")
	}
}

func (h *Handler) getNavigation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := itineraryID(w, r)
	if !ok {
		return
	}
	mode := models.TravelMode(strings.ToLower(r.URL.Query().Get("mode")))

	nav, err := h.services.NavigationService.Navigation(r.Context(), id, mode)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNavigation").Str("id", id).Msg("error building navigation link")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, nav, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getNavigation").Msg("error writing response")
	}
}

func itineraryID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, ErrEmptyItineraryID)
		return "", false
	}
	return id, true
}
