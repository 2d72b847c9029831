package model

import "encoding/json"

// CreatePeerRequest is the body of POST /internal/peers.
type CreatePeerRequest struct {
	Name  string `json:"name"`
	Phase string `json:"phase,omitempty"`
}

// PeerResponse describes one peer session.
type PeerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phase     string `json:"phase"`
	Queued    int    `json:"queued"`
	CreatedAt string `json:"createdAt"`
}

// SetPhaseRequest is the body of PUT /internal/peers/{peerId}/phase.
type SetPhaseRequest struct {
	Phase string `json:"phase"`
}

// ClickRequest is the body of POST /internal/peers/{peerId}/click. ID is
// "namespace:path"; without a namespace the manager's default is used.
type ClickRequest struct {
	ID      string              `json:"id"`
	Payload map[string]TagValue `json:"payload,omitempty"`
}

// TagValue is a typed payload entry. Type is one of byte, bool, short, int,
// long, float, double, string, byte_array, int_array, long_array, list,
// compound. A list value is a JSON array of TagValue of one type.
type TagValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// OutboxPacket is one packet that was sent to a peer.
type OutboxPacket struct {
	Type string `json:"type"`
}

// ActionsResponse lists the registered custom actions.
type ActionsResponse struct {
	DefaultNamespace string   `json:"defaultNamespace"`
	Actions          []string `json:"actions"`
}

// ErrorResponse is the JSON error body used by the internal API.
type ErrorResponse struct {
	Error string `json:"error"`
}
