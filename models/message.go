// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message kinds understood by the session bridge.
const (
	MessageTypeLoginStatus   = "LOGIN_STATUS"
	MessageActionSyncRequest = "sync-itineraries"
)

// MessageKind classifies a foreground-to-agent [Message].
type MessageKind int

const (
	// MessageUnknown is any message that matches neither known shape.
	MessageUnknown MessageKind = iota
	// MessageLoginStatus relays the user's login state.
	MessageLoginStatus
	// MessageSyncRequest asks for an immediate sync pass.
	MessageSyncRequest
)

// String returns a log-friendly name of the kind.
func (k MessageKind) String() string {
	switch k {
	case MessageLoginStatus:
		return "login-status"
	case MessageSyncRequest:
		return "sync-request"
	default:
		return "unknown"
	}
}

// Message is the envelope posted by the foreground application. Two shapes
// are accepted:
//
//	{"type": "LOGIN_STATUS", "isLoggedIn": true}
//	{"action": "sync-itineraries"}
type Message struct {
	Type       string `json:"type,omitempty"`
	IsLoggedIn *bool  `json:"isLoggedIn,omitempty"`
	Action     string `json:"action,omitempty"`
}

// Kind reports which of the known shapes m has. A LOGIN_STATUS message without
// the isLoggedIn flag is unknown.
func (m Message) Kind() MessageKind {
	switch {
	case m.Action == MessageActionSyncRequest:
		return MessageSyncRequest
	case m.Type == MessageTypeLoginStatus && m.IsLoggedIn != nil:
		return MessageLoginStatus
	default:
		return MessageUnknown
	}
}

// LoggedIn returns the login flag of a login-status message, false otherwise.
func (m Message) LoggedIn() bool {
	return m.IsLoggedIn != nil && *m.IsLoggedIn
}

// NewLoginStatusMessage builds a LOGIN_STATUS message.
func NewLoginStatusMessage(loggedIn bool) Message {
	return Message{Type: MessageTypeLoginStatus, IsLoggedIn: &loggedIn}
}

// NewSyncRequestMessage builds a sync request message.
func NewSyncRequestMessage() Message {
	return Message{Action: MessageActionSyncRequest}
}

// LoginStatus is the body returned by GET /check-login-status.
type LoginStatus struct {
	IsLoggedIn bool `json:"isLoggedIn"`
}
