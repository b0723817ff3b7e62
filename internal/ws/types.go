package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	// MessageTypePlacement is an inbound board snapshot from a sensor board.
	MessageTypePlacement MessageType = "placement"
	// MessageTypeState is an outbound reconciled session state.
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// PlacementPayload carries the FEN piece-placement field of one snapshot.
type PlacementPayload struct {
	Placement string `json:"placement"`
}

// ErrorPayload carries a human-readable failure description.
type ErrorPayload struct {
	Error string `json:"error"`
}
