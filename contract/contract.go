//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"social-sync/domain"
	"social-sync/wire"
)

// TokenSource is the credential provider surface consumed by every
// component: current bearer token, decoded identity, change notification.
type TokenSource interface {
	Token() string
	Identity() (domain.Identity, bool)
	OnChange(fn func())
}

// RemoteAPI is the pull side of the backend. List fetches swallow failures
// and return empty snapshots; callers must tolerate partial data.
type RemoteAPI interface {
	FetchConversations(ctx context.Context) []wire.ConversationItem
	FetchMessages(ctx context.Context, conversationID string, limit int) []wire.MessageItem
	FetchProfile(ctx context.Context, userID string) (wire.Profile, error)
	FetchCallCredential(ctx context.Context, conversationID string) (domain.CallCredential, error)
	FetchNotifications(ctx context.Context, userID string) []wire.NotificationItem
	DeleteMessage(ctx context.Context, messageID string) error
	DeleteConversation(ctx context.Context, conversationID string) error
	MarkNotificationsRead(ctx context.Context, userID string) error
}

// FrameSender is the outbound half of a push channel.
type FrameSender interface {
	Send(v any) error
	Connected() bool
}

// MediaSession is the external real-time-media object driven by the call
// machine. Join and Leave talk to the media backend; ReleaseLocalMedia
// only frees local devices and never fails.
type MediaSession interface {
	Join(ctx context.Context, cred domain.CallCredential, kind domain.CallKind) error
	Leave(ctx context.Context) error
	ReleaseLocalMedia()
}

// ConversationView is the slice of the reconciler the call machine needs:
// the active conversation, pinning on inbound calls, and peer identity.
type ConversationView interface {
	ActiveID() string
	Pin(ctx context.Context, conversationID string)
	PeerIdentity(conversationID string) domain.Participant
}
