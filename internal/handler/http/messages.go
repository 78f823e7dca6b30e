package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/models"
)

// maxMessageSize bounds a posted message body.
const maxMessageSize = 4 << 10

// postMessage accepts the foreground message protocol:
//
//	{"type": "LOGIN_STATUS", "isLoggedIn": true}
//	{"action": "sync-itineraries"}
//
// The message is handled before the response is written; sync passes it
// triggers keep running in the background.
func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	msg, err := decodeMessage(io.LimitReader(r.Body, maxMessageSize))
	if err != nil {
		log.Err(err).Str("func", "*Handler.postMessage").Msg("invalid message was posted")
		writeError(w, err)
		return
	}

	if err = h.services.SessionBridge.Handle(r.Context(), msg); err != nil {
		log.Err(err).Str("func", "*Handler.postMessage").Msg("message was rejected")
		writeError(w, err)
		return
	}

	log.Debug().Str("kind", msg.Kind().String()).Msg("message accepted")
	w.WriteHeader(http.StatusAccepted)
}

func decodeMessage(body io.Reader) (models.Message, error) {
	var msg models.Message
	if err := json.NewDecoder(body).Decode(&msg); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidMessageBody, err)
	}
	return msg, nil
}
