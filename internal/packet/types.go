// Package packet describes the transport boundary the dialog manager talks
// to: packet type tags, connection phases, the packets it reads and writes,
// and the listener and user interfaces.
package packet

import (
	"errors"

	"github.com/projectunified/unidialog-go/internal/action"
	"github.com/projectunified/unidialog-go/internal/nbt"
)

// ErrClosed is returned when sending to a user whose connection is gone.
var ErrClosed = errors.New("connection closed")

// Phase is the protocol stage of a peer connection.
type Phase int

const (
	PhaseHandshaking Phase = iota
	PhaseStatus
	PhaseLogin
	PhaseConfiguration
	PhasePlay
)

var phaseNames = [...]string{"handshaking", "status", "login", "configuration", "play"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// ParsePhase maps a phase name back to its value.
func ParsePhase(s string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == s {
			return Phase(i), true
		}
	}
	return 0, false
}

// Type is the declared wire type of a packet. Each packet shape has one type
// per phase it is legal in.
type Type int

const (
	TypeUnknown Type = iota
	TypeConfigurationCustomClickAction
	TypePlayCustomClickAction
	TypeConfigurationClearDialog
	TypePlayClearDialog
	TypePlayChatMessage
	TypeConfigurationKeepAlive
	TypePlayKeepAlive
)

var typeNames = map[Type]string{
	TypeUnknown:                        "unknown",
	TypeConfigurationCustomClickAction: "configuration/custom_click_action",
	TypePlayCustomClickAction:          "play/custom_click_action",
	TypeConfigurationClearDialog:       "configuration/clear_dialog",
	TypePlayClearDialog:                "play/clear_dialog",
	TypePlayChatMessage:                "play/chat_message",
	TypeConfigurationKeepAlive:         "configuration/keep_alive",
	TypePlayKeepAlive:                  "play/keep_alive",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// Packet is any value carried by the transport.
type Packet interface {
	PacketType() Type
}

// CustomClickAction is sent by the client when a dialog button with a custom
// action is clicked.
type CustomClickAction struct {
	Phase   Phase
	ID      action.NamespacedID
	Payload nbt.Tag
}

// PacketType returns the configuration variant in the configuration phase and
// the play variant otherwise.
func (p *CustomClickAction) PacketType() Type {
	if p.Phase == PhaseConfiguration {
		return TypeConfigurationCustomClickAction
	}
	return TypePlayCustomClickAction
}

// ClearDialog tells the client to close whatever dialog it is showing.
type ClearDialog struct {
	Phase Phase
}

func (p *ClearDialog) PacketType() Type {
	if p.Phase == PhaseConfiguration {
		return TypeConfigurationClearDialog
	}
	return TypePlayClearDialog
}

// NewClearDialog returns the clear packet in its configuration or play form.
func NewClearDialog(configuration bool) *ClearDialog {
	if configuration {
		return &ClearDialog{Phase: PhaseConfiguration}
	}
	return &ClearDialog{Phase: PhasePlay}
}

// KeepAlive is the heartbeat exchanged in configuration and play.
type KeepAlive struct {
	Phase Phase
	ID    int64
}

func (p *KeepAlive) PacketType() Type {
	if p.Phase == PhaseConfiguration {
		return TypeConfigurationKeepAlive
	}
	return TypePlayKeepAlive
}

// ChatMessage is a plain chat line sent during play.
type ChatMessage struct {
	Message string
}

func (p *ChatMessage) PacketType() Type { return TypePlayChatMessage }
