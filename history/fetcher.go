// Package history issues the authenticated pull requests. A failed fetch
// (network error or non-2xx) degrades to an empty snapshot plus a log
// line; callers must tolerate partial data. No retries are performed.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"social-sync/contract"
	"social-sync/domain"
	"social-sync/errors"
	"social-sync/wire"
)

type Fetcher struct {
	base   string
	client *http.Client
	tokens contract.TokenSource
	log    *slog.Logger
}

func NewFetcher(base string, tokens contract.TokenSource, log *slog.Logger) *Fetcher {
	return &Fetcher{
		base:   base,
		client: &http.Client{Timeout: 15 * time.Second},
		tokens: tokens,
		log:    log,
	}
}

var _ contract.RemoteAPI = (*Fetcher)(nil)

func (f *Fetcher) FetchConversations(ctx context.Context) []wire.ConversationItem {
	var items []wire.ConversationItem
	if err := f.get(ctx, "/chats", &items); err != nil {
		f.log.Warn("Conversation list fetch failed", "err", err)
		return nil
	}
	return items
}

func (f *Fetcher) FetchMessages(ctx context.Context, conversationID string, limit int) []wire.MessageItem {
	var items []wire.MessageItem
	path := fmt.Sprintf("/chats/%s/messages?limit=%d", conversationID, limit)
	if err := f.get(ctx, path, &items); err != nil {
		f.log.Warn("Message page fetch failed", "conversation", conversationID, "err", err)
		return nil
	}
	return items
}

func (f *Fetcher) FetchProfile(ctx context.Context, userID string) (wire.Profile, error) {
	var profile wire.Profile
	if err := f.get(ctx, "/users/"+userID+"/profile", &profile); err != nil {
		return wire.Profile{}, err
	}
	return profile, nil
}

func (f *Fetcher) FetchCallCredential(ctx context.Context, conversationID string) (domain.CallCredential, error) {
	var item wire.CallCredentialItem
	if err := f.get(ctx, "/chats/"+conversationID+"/call-credential", &item); err != nil {
		return domain.CallCredential{}, err
	}
	return item.ToDomain(), nil
}

func (f *Fetcher) FetchNotifications(ctx context.Context, userID string) []wire.NotificationItem {
	var items []wire.NotificationItem
	if err := f.get(ctx, "/notifications/"+userID, &items); err != nil {
		f.log.Warn("Notification history fetch failed", "err", err)
		return nil
	}
	return items
}

func (f *Fetcher) DeleteMessage(ctx context.Context, messageID string) error {
	return f.do(ctx, http.MethodDelete, "/chats/messages/"+messageID, nil)
}

func (f *Fetcher) DeleteConversation(ctx context.Context, conversationID string) error {
	return f.do(ctx, http.MethodDelete, "/chats/"+conversationID, nil)
}

func (f *Fetcher) MarkNotificationsRead(ctx context.Context, userID string) error {
	return f.do(ctx, http.MethodPut, "/notifications/"+userID+"/read", nil)
}

func (f *Fetcher) get(ctx context.Context, path string, out any) error {
	return f.do(ctx, http.MethodGet, path, out)
}

func (f *Fetcher) do(ctx context.Context, method, path string, out any) error {
	token := f.tokens.Token()
	if token == "" {
		return errors.ErrNoToken
	}

	req, err := http.NewRequestWithContext(ctx, method, f.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
