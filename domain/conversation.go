package domain

import "time"

type Conversation struct {
	ID           string
	Name         string
	IsGroup      bool
	Participants []Participant
	LastMessage  *Message
	UnreadCount  int
	UpdatedAt    time.Time
}

// Participant returns the participant with the given id, if present.
func (c *Conversation) Participant(id string) (Participant, bool) {
	for _, p := range c.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// SetParticipant updates the cached fields of a participant in place,
// keeping the set unique by id.
func (c *Conversation) SetParticipant(p Participant) {
	for i := range c.Participants {
		if c.Participants[i].ID == p.ID {
			c.Participants[i] = p
			return
		}
	}
	c.Participants = append(c.Participants, p)
}

// DisplayIdentity derives the name and avatar shown for the conversation.
// Groups use their own name; 1:1 chats borrow the non-self participant.
func (c *Conversation) DisplayIdentity(selfID string) (string, string) {
	if c.IsGroup || c.Name != "" {
		return c.Name, DefaultAvatar
	}
	for _, p := range c.Participants {
		if p.ID == selfID {
			continue
		}
		name, avatar := p.Name, p.Avatar
		if name == "" {
			name = UnknownUserName
		}
		if avatar == "" {
			avatar = DefaultAvatar
		}
		return name, avatar
	}
	return UnknownUserName, DefaultAvatar
}
