package wire

import (
	"time"

	"social-sync/domain"
)

// REST payloads, snake_case on the wire, mapped to domain shapes here so
// the reconciler never touches server field names.

type ParticipantItem struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type MessageItem struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	MediaURL       string    `json:"media_url"`
	CreatedAt      time.Time `json:"created_at"`
	IsUnsent       bool      `json:"is_unsent"`
}

type ConversationItem struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	IsGroup      bool              `json:"is_group"`
	Participants []ParticipantItem `json:"participants"`
	LastMessage  *MessageItem      `json:"last_message"`
	CreatedAt    time.Time         `json:"created_at"`
}

type Profile struct {
	Name              string `json:"name"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// DisplayName prefers the full name, falling back to the handle.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Username
}

type CallCredentialItem struct {
	Token   string `json:"token"`
	AppID   string `json:"app_id"`
	Channel string `json:"channel"`
}

type NotificationItem struct {
	ID          int64     `json:"ID"`
	SenderName  string    `json:"sender_name"`
	SenderImage string    `json:"sender_image"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	EntityID    int64     `json:"entity_id"`
	CreatedAt   time.Time `json:"created_at"`
	IsRead      bool      `json:"is_read"`
}

func (p ParticipantItem) ToDomain() domain.Participant {
	name := p.FullName
	if name == "" {
		name = p.Username
	}
	return domain.Participant{ID: p.ID, Name: name, Avatar: p.Avatar}
}

func (m MessageItem) ToDomain() domain.Message {
	msg := domain.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		Kind:           domain.KindForMedia(m.MediaURL),
		MediaURL:       m.MediaURL,
		CreatedAt:      m.CreatedAt,
		Status:         domain.StatusSent,
		Unsent:         m.IsUnsent,
	}
	if msg.Unsent {
		msg.Unsend()
	}
	return msg
}

func (c ConversationItem) ToDomain() domain.Conversation {
	conv := domain.Conversation{
		ID:        c.ID,
		Name:      c.Name,
		IsGroup:   c.IsGroup,
		UpdatedAt: c.CreatedAt,
	}
	for _, p := range c.Participants {
		conv.SetParticipant(p.ToDomain())
	}
	if c.LastMessage != nil {
		last := c.LastMessage.ToDomain()
		conv.LastMessage = &last
		if last.CreatedAt.After(conv.UpdatedAt) {
			conv.UpdatedAt = last.CreatedAt
		}
	}
	return conv
}

func (c CallCredentialItem) ToDomain() domain.CallCredential {
	return domain.CallCredential{Token: c.Token, AppID: c.AppID, Channel: c.Channel}
}

func (n NotificationItem) ToDomain() domain.Notification {
	return domain.Notification{
		ID:          n.ID,
		SenderName:  n.SenderName,
		SenderImage: n.SenderImage,
		Type:        domain.NotificationType(n.Type),
		Message:     n.Message,
		EntityID:    n.EntityID,
		CreatedAt:   n.CreatedAt,
		Read:        n.IsRead,
	}
}
