// Package domain contains core concepts of the synchronization layer.
// This file defines Message values and the kind derivation rules.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

type MessageKind string

const (
	KindText  MessageKind = "text"
	KindImage MessageKind = "image"
	KindGif   MessageKind = "gif"
	KindVideo MessageKind = "video"
)

type DeliveryStatus string

const (
	StatusSending DeliveryStatus = "sending"
	StatusSent    DeliveryStatus = "sent"
	StatusSeen    DeliveryStatus = "seen"
)

// Tombstone replaces the content of an unsent message.
const Tombstone = "This message was unsent"

type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	SenderName     string
	SenderAvatar   string
	Content        string
	Kind           MessageKind
	MediaURL       string
	CreatedAt      time.Time
	Status         DeliveryStatus
	Unsent         bool
}

// PlaceholderID builds a local message id used until the server assigns one.
func PlaceholderID(at time.Time) string {
	return fmt.Sprintf("msg-%d", at.UnixMilli())
}

// KindForMedia derives the message kind from the media reference alone.
// The kind is never stored independently of the reference, so the two
// cannot diverge.
func KindForMedia(mediaURL string) MessageKind {
	if mediaURL == "" {
		return KindText
	}
	ref := strings.ToLower(mediaURL)
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	switch {
	case strings.HasSuffix(ref, ".gif"):
		return KindGif
	case strings.HasSuffix(ref, ".mp4"),
		strings.HasSuffix(ref, ".webm"),
		strings.HasSuffix(ref, ".mov"):
		return KindVideo
	default:
		return KindImage
	}
}

// DetectMediaKind classifies raw outbound media bytes before upload.
func DetectMediaKind(data []byte) MessageKind {
	mime := mimetype.Detect(data)
	switch {
	case mime.Is("image/gif"):
		return KindGif
	case strings.HasPrefix(mime.String(), "video/"):
		return KindVideo
	case strings.HasPrefix(mime.String(), "image/"):
		return KindImage
	default:
		return KindText
	}
}

// Unsend applies the local tombstone. Calling it twice yields the same
// message as calling it once.
func (m *Message) Unsend() {
	m.Content = Tombstone
	m.Unsent = true
	m.MediaURL = ""
	m.Kind = KindText
}
