// Package enrich resolves sparse participant stubs into display
// identities. Resolution degrades gracefully: a failed profile fetch
// yields a placeholder, never an error, so rendering is never blocked on
// attribution.
package enrich

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"social-sync/contract"
	"social-sync/domain"
	"social-sync/repositories"
)

type Enricher struct {
	tokens contract.TokenSource
	api    contract.RemoteAPI
	cache  repositories.IProfileCache
	log    *slog.Logger
}

func NewEnricher(tokens contract.TokenSource, api contract.RemoteAPI,
	cache repositories.IProfileCache, log *slog.Logger) *Enricher {
	return &Enricher{tokens: tokens, api: api, cache: cache, log: log}
}

// Resolve returns the display name and avatar for a participant.
// Order: local identity short-circuit, the conversation's own participant
// set, the session profile cache, then a profile fetch whose result is
// cached. Failures fall back to a placeholder.
func (e *Enricher) Resolve(ctx context.Context, participantID string,
	participants []domain.Participant) (string, string) {

	if identity, ok := e.tokens.Identity(); ok && identity.ID == participantID {
		return identity.FullName, identity.Avatar
	}

	if p, ok := lo.Find(participants, func(p domain.Participant) bool {
		return p.ID == participantID
	}); ok && !p.Stub() {
		return p.Name, p.Avatar
	}

	if p, ok := e.cache.Get(participantID); ok {
		return p.Name, p.Avatar
	}

	profile, err := e.api.FetchProfile(ctx, participantID)
	if err != nil || profile.DisplayName() == "" {
		e.log.Debug("Profile resolution failed", "participant", participantID, "err", err)
		return domain.UnknownUserName, domain.DefaultAvatar
	}

	resolved := domain.Participant{
		ID:     participantID,
		Name:   profile.DisplayName(),
		Avatar: profile.ProfilePictureURL,
	}
	if err := e.cache.Put(resolved); err != nil {
		e.log.Debug("Profile cache write failed", "participant", participantID, "err", err)
	}
	return resolved.Name, resolved.Avatar
}

// EnrichConversations resolves every participant of every conversation.
// Each stub is resolved independently and concurrently; the viewing user
// never costs a network call. The conversations are freshly mapped from a
// snapshot and not yet published, so mutating them here is safe.
func (e *Enricher) EnrichConversations(ctx context.Context, convs []*domain.Conversation) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, conv := range convs {
		snapshot := append([]domain.Participant{}, conv.Participants...)
		for _, p := range snapshot {
			if !p.Stub() {
				continue
			}
			wg.Add(1)
			go func(conv *domain.Conversation, p domain.Participant) {
				defer wg.Done()
				name, avatar := e.Resolve(ctx, p.ID, snapshot)
				p.Name = name
				p.Avatar = avatar
				mu.Lock()
				conv.SetParticipant(p)
				mu.Unlock()
			}(conv, p)
		}
	}
	wg.Wait()
}
