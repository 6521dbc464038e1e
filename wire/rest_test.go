package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"social-sync/domain"
)

func TestMessageItem_ToDomain_Unsent(t *testing.T) {
	req := require.New(t)

	item := MessageItem{
		ID:             "m1",
		ConversationID: "c1",
		SenderID:       "u2",
		Content:        "original",
		MediaURL:       "https://cdn.example.com/photo.jpg",
		IsUnsent:       true,
	}

	msg := item.ToDomain()
	req.True(msg.Unsent)
	req.Equal(domain.Tombstone, msg.Content)
	req.Equal(domain.KindText, msg.Kind)
	req.Empty(msg.MediaURL)
}

func TestConversationItem_ToDomain(t *testing.T) {
	req := require.New(t)

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	lastAt := created.Add(2 * time.Hour)
	item := ConversationItem{
		ID:      "c1",
		Name:    "",
		IsGroup: false,
		Participants: []ParticipantItem{
			{ID: "u1", FullName: "Alice Smith", Avatar: "https://cdn.example.com/alice.png"},
			{ID: "u2", Username: "bob"},
		},
		LastMessage: &MessageItem{ID: "m5", ConversationID: "c1", SenderID: "u2", Content: "later", CreatedAt: lastAt},
		CreatedAt:   created,
	}

	conv := item.ToDomain()
	req.Len(conv.Participants, 2)
	req.Equal("Alice Smith", conv.Participants[0].Name)
	req.Equal("bob", conv.Participants[1].Name)
	req.NotNil(conv.LastMessage)
	req.Equal(lastAt, conv.UpdatedAt)
}

func TestProfile_DisplayName(t *testing.T) {
	req := require.New(t)
	req.Equal("Alice Smith", Profile{Name: "Alice Smith", Username: "alice"}.DisplayName())
	req.Equal("alice", Profile{Username: "alice"}.DisplayName())
}

func TestNotificationItem_ToDomain(t *testing.T) {
	req := require.New(t)

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	item := NotificationItem{
		ID:         7,
		SenderName: "bob",
		Type:       "follow",
		Message:    "bob started following you",
		EntityID:   42,
		CreatedAt:  at,
		IsRead:     true,
	}

	n := item.ToDomain()
	req.Equal(int64(7), n.ID)
	req.Equal(domain.NotificationType("follow"), n.Type)
	req.True(n.Read)
}
