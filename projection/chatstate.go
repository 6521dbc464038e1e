// Package projection reconciles REST snapshots with push deltas into one
// ordered, deduplicated local view. Handles conversation ordering, unread
// counters, and read-repair. ChatState is the single writer of chat state;
// nothing else mutates the conversation set or the message buffer.
package projection

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"social-sync/contract"
	"social-sync/domain"
	"social-sync/enrich"
	"social-sync/errors"
	"social-sync/wire"
)

// DefaultPageSize is the fixed history window pulled when a conversation
// is opened, newest-first from the server.
const DefaultPageSize = 50

// Indexer receives every message applied to the open buffer. Implemented
// by search.Index; optional.
type Indexer interface {
	Add(msg domain.Message) error
}

type ChatState struct {
	log      *slog.Logger
	tokens   contract.TokenSource
	api      contract.RemoteAPI
	channel  contract.FrameSender
	enricher *enrich.Enricher
	index    Indexer
	pageSize int

	mu            sync.Mutex
	conversations []*domain.Conversation
	messages      []domain.Message
	activeID      string
	epoch         uint64
}

func NewChatState(tokens contract.TokenSource, api contract.RemoteAPI,
	channel contract.FrameSender, enricher *enrich.Enricher, log *slog.Logger) *ChatState {
	return &ChatState{
		log:      log,
		tokens:   tokens,
		api:      api,
		channel:  channel,
		enricher: enricher,
		pageSize: DefaultPageSize,
	}
}

// WithIndex attaches a message indexer fed from the open buffer.
func (s *ChatState) WithIndex(index Indexer) *ChatState {
	s.index = index
	return s
}

// WithPageSize overrides the history window size.
func (s *ChatState) WithPageSize(n int) *ChatState {
	if n > 0 {
		s.pageSize = n
	}
	return s
}

// LoadConversations pulls the conversation snapshot, enriches every
// participant and replaces the in-memory set wholesale. REST is
// authoritative for structure; push deltas only reorder and annotate.
func (s *ChatState) LoadConversations(ctx context.Context) {
	items := s.api.FetchConversations(ctx)
	convs := lo.Map(items, func(item wire.ConversationItem, _ int) *domain.Conversation {
		conv := item.ToDomain()
		return &conv
	})
	s.enricher.EnrichConversations(ctx, convs)

	s.mu.Lock()
	s.conversations = convs
	s.mu.Unlock()
}

// Open makes the conversation active, clears the buffer and pulls the most
// recent page, reversed to oldest-first. The fetch is tagged with an epoch:
// a completion superseded by a later Open is discarded instead of
// overwriting newer state.
func (s *ChatState) Open(ctx context.Context, conversationID string) {
	s.mu.Lock()
	s.activeID = conversationID
	s.messages = nil
	s.epoch++
	epoch := s.epoch
	var participants []domain.Participant
	if conv, ok := s.find(conversationID); ok {
		conv.UnreadCount = 0
		participants = append(participants, conv.Participants...)
	}
	s.mu.Unlock()

	items := s.api.FetchMessages(ctx, conversationID, s.pageSize)

	page := make([]domain.Message, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		msg := items[i].ToDomain()
		msg.SenderName, msg.SenderAvatar = s.enricher.Resolve(ctx, msg.SenderID, participants)
		page = append(page, msg)
	}

	s.mu.Lock()
	if s.epoch == epoch && s.activeID == conversationID {
		s.messages = page
	}
	s.mu.Unlock()
}

// HandleFrame applies a push delta. Signal frames are not chat state and
// are ignored here; the demultiplexer routes them to the call machine.
func (s *ChatState) HandleFrame(ctx context.Context, frame wire.Frame) {
	switch f := frame.(type) {
	case wire.NewMessage:
		s.applyNewMessage(ctx, f)
	case wire.GroupCreated:
		s.LoadConversations(ctx)
	}
}

func (s *ChatState) applyNewMessage(ctx context.Context, f wire.NewMessage) {
	s.mu.Lock()
	_, known := s.find(f.ConversationID)
	s.mu.Unlock()

	// Read-repair: the push may race ahead of the REST list. Reload once,
	// then proceed with whatever state we have.
	if !known {
		s.LoadConversations(ctx)
	}

	s.mu.Lock()
	var participants []domain.Participant
	if conv, ok := s.find(f.ConversationID); ok {
		participants = append(participants, conv.Participants...)
	}
	s.mu.Unlock()

	senderName, senderAvatar := s.enricher.Resolve(ctx, f.SenderID, participants)

	now := time.Now()
	msg := domain.Message{
		ID:             f.ID,
		ConversationID: f.ConversationID,
		SenderID:       f.SenderID,
		SenderName:     senderName,
		SenderAvatar:   senderAvatar,
		Content:        f.Content,
		Kind:           domain.KindForMedia(f.MediaURL),
		MediaURL:       f.MediaURL,
		CreatedAt:      now,
		Status:         domain.StatusSent,
	}
	if msg.ID == "" {
		msg.ID = domain.PlaceholderID(now)
	}
	if msg.Kind != domain.KindText && msg.Content == "" {
		msg.Content = f.MediaURL
	}

	s.mu.Lock()
	active := s.activeID == f.ConversationID
	if active {
		// Full history is buffered only for the open conversation; other
		// chats update their preview alone.
		s.messages = append(s.messages, msg)
	}
	if conv, ok := s.find(f.ConversationID); ok {
		last := msg
		conv.LastMessage = &last
		conv.UpdatedAt = msg.CreatedAt
		if !active {
			conv.UnreadCount++
		}
		s.moveToFront(conv.ID)
	}
	s.mu.Unlock()

	if active && s.index != nil {
		if err := s.index.Add(msg); err != nil {
			s.log.Debug("Message indexing failed", "message", msg.ID, "err", err)
		}
	}
}

// Send builds an outbound chat frame for the active conversation. No
// optimistic local copy is appended: the authoritative copy arrives via
// the push channel, matched by the client correlation id.
func (s *ChatState) Send(content string) error {
	return s.send(content, "", "")
}

// SendMedia sends a media reference, deriving the media type from the raw
// bytes about to be uploaded.
func (s *ChatState) SendMedia(data []byte, mediaURL string) error {
	kind := domain.DetectMediaKind(data)
	return s.send("", string(kind), mediaURL)
}

func (s *ChatState) send(content, mediaType, mediaURL string) error {
	s.mu.Lock()
	conversationID := s.activeID
	s.mu.Unlock()
	if conversationID == "" {
		return errors.ErrNoActiveConversation
	}
	identity, ok := s.tokens.Identity()
	if !ok {
		return errors.ErrNoIdentity
	}
	if !s.channel.Connected() {
		return errors.ErrNotConnected
	}

	return s.channel.Send(wire.ChatFrame{
		Type:           wire.FrameChat,
		ClientID:       uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       identity.ID,
		Content:        content,
		MediaType:      mediaType,
		MediaURL:       mediaURL,
	})
}

// Unsend tombstones the message locally, then fires a best-effort remote
// delete. Remote failure is logged and never rolled back: local state
// reflects user intent.
func (s *ChatState) Unsend(ctx context.Context, messageID string) {
	s.mu.Lock()
	for i := range s.messages {
		if s.messages[i].ID == messageID {
			s.messages[i].Unsend()
		}
	}
	s.mu.Unlock()

	if err := s.api.DeleteMessage(ctx, messageID); err != nil {
		s.log.Warn("Remote unsend failed, keeping local tombstone", "message", messageID, "err", err)
	}
}

// DeleteConversation removes the conversation remotely best-effort, then
// unconditionally locally.
func (s *ChatState) DeleteConversation(ctx context.Context, conversationID string) {
	if err := s.api.DeleteConversation(ctx, conversationID); err != nil {
		s.log.Warn("Remote conversation delete failed", "conversation", conversationID, "err", err)
	}

	s.mu.Lock()
	s.conversations = lo.Filter(s.conversations, func(c *domain.Conversation, _ int) bool {
		return c.ID != conversationID
	})
	if s.activeID == conversationID {
		s.activeID = ""
		s.messages = nil
	}
	s.mu.Unlock()
}

// Conversations returns a snapshot copy in display order.
func (s *ChatState) Conversations() []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Map(s.conversations, func(c *domain.Conversation, _ int) domain.Conversation {
		return *c
	})
}

// Messages returns a snapshot copy of the open buffer, oldest-first.
func (s *ChatState) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Message{}, s.messages...)
}

func (s *ChatState) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Pin makes the signaled conversation active, as when an incoming call
// addresses a chat the user is not looking at.
func (s *ChatState) Pin(ctx context.Context, conversationID string) {
	s.Open(ctx, conversationID)
}

// PeerIdentity returns the non-self participant of a conversation for the
// call UI.
func (s *ChatState) PeerIdentity(conversationID string) domain.Participant {
	selfID := ""
	if identity, ok := s.tokens.Identity(); ok {
		selfID = identity.ID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.find(conversationID)
	if !ok {
		return domain.Participant{Name: domain.UnknownUserName, Avatar: domain.DefaultAvatar}
	}
	name, avatar := conv.DisplayIdentity(selfID)
	peer := domain.Participant{Name: name, Avatar: avatar}
	for _, p := range conv.Participants {
		if p.ID != selfID {
			peer.ID = p.ID
			break
		}
	}
	return peer
}

var _ contract.ConversationView = (*ChatState)(nil)

// find must be called with the mutex held.
func (s *ChatState) find(conversationID string) (*domain.Conversation, bool) {
	return lo.Find(s.conversations, func(c *domain.Conversation) bool {
		return c.ID == conversationID
	})
}

// moveToFront re-applies the ordering key after a message event: the
// affected conversation goes to index 0, everything else keeps its
// relative order. Must be called with the mutex held.
func (s *ChatState) moveToFront(conversationID string) {
	conv, ok := s.find(conversationID)
	if !ok {
		return
	}
	rest := lo.Filter(s.conversations, func(c *domain.Conversation, _ int) bool {
		return c.ID != conversationID
	})
	s.conversations = append([]*domain.Conversation{conv}, rest...)
}
