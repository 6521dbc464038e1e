// Package wire defines the JSON shapes exchanged with the backend: push
// frames delivered over the persistent sockets and the REST payloads
// returned by pull requests. Inbound frames are decoded into a closed set
// of variants at the channel boundary; unknown discriminants are rejected
// rather than field-probed.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"social-sync/errors"
)

type FrameType string

const (
	FrameNewMessage   FrameType = "new_message"
	FrameGroupCreated FrameType = "group_created"
	FrameSignal       FrameType = "signal"
)

type SignalType string

const (
	SignalIncoming SignalType = "incoming"
	SignalEnd      SignalType = "end"
)

var validate = validator.New()

// Frame is one of NewMessage, GroupCreated or Signal.
type Frame interface {
	FrameType() FrameType
}

type NewMessage struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id" validate:"required"`
	SenderID       string `json:"sender_id" validate:"required"`
	Content        string `json:"content"`
	MediaURL       string `json:"media_url"`
	ClientID       string `json:"client_id"`
}

func (NewMessage) FrameType() FrameType { return FrameNewMessage }

type GroupCreated struct {
	ConversationID string `json:"conversation_id"`
}

func (GroupCreated) FrameType() FrameType { return FrameGroupCreated }

type Signal struct {
	SignalType     SignalType `json:"signal_type" validate:"required,oneof=incoming end"`
	CallType       string     `json:"call_type" validate:"omitempty,oneof=audio video"`
	ConversationID string     `json:"conversation_id" validate:"required"`
	SenderID       string     `json:"sender_id" validate:"required"`
}

func (Signal) FrameType() FrameType { return FrameSignal }

type envelope struct {
	Type FrameType `json:"type"`
}

// Decode parses a raw push frame into its typed variant and validates it.
func Decode(data []byte) (Frame, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("frame envelope: %w", err)
	}

	var frame Frame
	switch env.Type {
	case FrameNewMessage:
		var f NewMessage
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("new_message frame: %w", err)
		}
		frame = f
	case FrameGroupCreated:
		var f GroupCreated
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("group_created frame: %w", err)
		}
		frame = f
	case FrameSignal:
		var f Signal
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("signal frame: %w", err)
		}
		frame = f
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownFrame, env.Type)
	}

	if err := validate.Struct(frame); err != nil {
		return nil, fmt.Errorf("invalid %s frame: %w", env.Type, err)
	}
	return frame, nil
}

// ChatFrame is the outbound chat payload. ClientID is a locally generated
// correlation id echoed back by the server push.
type ChatFrame struct {
	Type           FrameType `json:"type"`
	ClientID       string    `json:"client_id,omitempty"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	MediaType      string    `json:"media_type,omitempty"`
	MediaURL       string    `json:"media_url,omitempty"`
}

// SignalFrame is the outbound call-lifecycle payload.
type SignalFrame struct {
	Type           FrameType  `json:"type"`
	SignalType     SignalType `json:"signal_type"`
	CallType       string     `json:"call_type,omitempty"`
	ConversationID string     `json:"conversation_id"`
	SenderID       string     `json:"sender_id"`
}

const FrameChat FrameType = "chat"
