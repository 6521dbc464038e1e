// Package notify is the unidirectional analogue of the chat channel scoped
// to notifications: deferred connect once credentials are ready, inbound
// prepend with unread counting, a transient toast slot that self-clears,
// and optimistic read-state.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/abadojack/whatlanggo"

	"social-sync/contract"
	"social-sync/domain"
	"social-sync/moderation"
	"social-sync/wire"
)

// DefaultToastDuration is how long a toast stays up before self-clearing.
const DefaultToastDuration = 5 * time.Second

// Connector abstracts the owned push channel so tests can feed frames
// without a socket.
type Connector interface {
	Connect(ctx context.Context)
	Close()
}

// ChannelFactory builds the owned push channel. A channel's Close is
// terminal, so every (re)start after a logout gets a fresh one.
type ChannelFactory func() Connector

type Center struct {
	log           *slog.Logger
	tokens        contract.TokenSource
	api           contract.RemoteAPI
	newChannel    ChannelFactory
	moderator     *moderation.Moderator
	toastDuration time.Duration

	mu            sync.Mutex
	channel       Connector
	notifications []domain.Notification
	toast         *domain.Notification
	toastTimer    *time.Timer
	started       bool
}

func NewCenter(tokens contract.TokenSource, api contract.RemoteAPI, log *slog.Logger) *Center {
	return &Center{
		log:           log,
		tokens:        tokens,
		api:           api,
		toastDuration: DefaultToastDuration,
	}
}

// WithChannel attaches the push channel factory.
func (c *Center) WithChannel(factory ChannelFactory) *Center {
	c.newChannel = factory
	return c
}

// WithModerator attaches the muted-words filter.
func (c *Center) WithModerator(m *moderation.Moderator) *Center {
	c.moderator = m
	return c
}

// WithToastDuration overrides the toast display duration.
func (c *Center) WithToastDuration(d time.Duration) *Center {
	if d > 0 {
		c.toastDuration = d
	}
	return c
}

// Start connects as soon as both a token and an identity are available.
// When they are not yet, it subscribes to the credential provider and
// connects on the change notification instead of connecting blind.
func (c *Center) Start(ctx context.Context) {
	c.tokens.OnChange(func() {
		c.tryStart(context.Background())
	})
	c.tryStart(ctx)
}

func (c *Center) tryStart(ctx context.Context) {
	identity, ok := c.tokens.Identity()
	if !ok || c.tokens.Token() == "" {
		return
	}

	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	c.loadHistory(ctx, identity.ID)
	if c.newChannel != nil {
		channel := c.newChannel()
		c.mu.Lock()
		c.channel = channel
		c.mu.Unlock()
		channel.Connect(ctx)
	}
}

// Close tears down the owned channel, as on logout. A later credential
// change starts over with a fresh channel.
func (c *Center) Close() {
	c.mu.Lock()
	channel := c.channel
	c.channel = nil
	c.started = false
	c.mu.Unlock()

	if channel != nil {
		channel.Close()
	}
}

func (c *Center) loadHistory(ctx context.Context, userID string) {
	items := c.api.FetchNotifications(ctx, userID)
	list := make([]domain.Notification, 0, len(items))
	for _, item := range items {
		list = append(list, item.ToDomain())
	}

	c.mu.Lock()
	c.notifications = list
	c.mu.Unlock()
}

// HandleRaw parses one inbound frame. Malformed frames are logged and
// dropped, muted notifications are censored and never toast.
func (c *Center) HandleRaw(data []byte) {
	var item wire.NotificationItem
	if err := json.Unmarshal(data, &item); err != nil {
		c.log.Warn("Dropping malformed notification frame", "err", err)
		return
	}
	notification := item.ToDomain()

	muted := false
	if c.moderator != nil {
		censored, matched := c.moderator.Censor(notification.Message)
		if matched {
			lang := whatlanggo.Detect(notification.Message).Lang.Iso6391()
			c.log.Info("Muted words in notification",
				"notification", notification.ID, "lang", lang)
			notification.Message = censored
			muted = true
		}
	}

	c.mu.Lock()
	c.notifications = append([]domain.Notification{notification}, c.notifications...)
	if !muted {
		c.setToastLocked(notification)
	}
	c.mu.Unlock()
}

// setToastLocked fills the toast slot and arms its self-clear timer.
// Must be called with the mutex held.
func (c *Center) setToastLocked(n domain.Notification) {
	c.toast = &n
	if c.toastTimer != nil {
		c.toastTimer.Stop()
	}
	c.toastTimer = time.AfterFunc(c.toastDuration, func() {
		c.mu.Lock()
		if c.toast != nil && c.toast.ID == n.ID {
			c.toast = nil
		}
		c.mu.Unlock()
	})
}

// MarkAllRead flips every notification locally first, then fires the
// remote call; a remote failure is logged, not rolled back.
func (c *Center) MarkAllRead(ctx context.Context) {
	c.mu.Lock()
	for i := range c.notifications {
		c.notifications[i].Read = true
	}
	c.mu.Unlock()

	identity, ok := c.tokens.Identity()
	if !ok {
		return
	}
	if err := c.api.MarkNotificationsRead(ctx, identity.ID); err != nil {
		c.log.Warn("Remote mark-read failed, keeping local state", "err", err)
	}
}

// MarkRead flips a single notification locally.
func (c *Center) MarkRead(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].Read = true
		}
	}
}

// Notifications returns a snapshot copy, newest first.
func (c *Center) Notifications() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Notification{}, c.notifications...)
}

// Unread counts notifications not yet read.
func (c *Center) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, n := range c.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// Toast returns the transient toast, if one is showing.
func (c *Center) Toast() (domain.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.toast == nil {
		return domain.Notification{}, false
	}
	return *c.toast, true
}
