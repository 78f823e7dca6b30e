package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mapster-agent/internal/app"
	"github.com/MKhiriev/mapster-agent/internal/service"
	"github.com/MKhiriev/mapster-agent/internal/store"
	"github.com/MKhiriev/mapster-agent/internal/utils"
)

type errorReply struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorReply{
	ErrInvalidMessageBody: {http.StatusBadRequest, app.MsgInvalidMessage},
	ErrEmptyItineraryID:   {http.StatusBadRequest, app.MsgNoItineraryIDProvided},

	service.ErrUnknownMessage:    {http.StatusBadRequest, app.MsgUnknownMessage},
	service.ErrInvalidTravelMode: {http.StatusBadRequest, app.MsgInvalidTravelMode},
	service.ErrItineraryNotFound: {http.StatusNotFound, app.MsgItineraryNotFound},
	service.ErrNoWaypoints:       {http.StatusUnprocessableEntity, app.MsgNoWaypoints},

	store.ErrItineraryNotFound: {http.StatusNotFound, app.MsgItineraryNotFound},
}

var internalError = errorReply{http.StatusInternalServerError, app.MsgInternalServerError}

func replyFromError(err error) errorReply {
	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return replyFromError(err).status
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError answers with the status and message mapped from err. Store and
// other unexpected errors become a generic 500.
func writeError(w http.ResponseWriter, err error) {
	reply := replyFromError(err)
	_, _ = utils.WriteJSON(w, errorResponse{Error: reply.message}, reply.status)
}
