// Package call runs the signaling state machine:
// idle → dialing → connected → idle on the caller path,
// idle → incoming → connected → idle on the callee path.
// At most one non-idle session exists; signaling not addressed to the
// current conversation while non-idle is ignored, never queued.
package call

import (
	"context"
	"log/slog"
	"sync"

	"social-sync/contract"
	"social-sync/domain"
	"social-sync/errors"
	"social-sync/wire"
)

type transition string

const (
	evStart    transition = "start"
	evIncoming transition = "incoming"
	evAccept   transition = "accept"
	evLeave    transition = "leave"
)

// guards is the explicit transition table. Ignored transitions are a
// queryable fact, not an implicit early return.
var guards = map[domain.CallState]map[transition]bool{
	domain.CallIdle: {
		evStart:    true,
		evIncoming: true,
	},
	domain.CallDialing: {
		evLeave: true,
	},
	domain.CallIncoming: {
		evAccept: true,
		evLeave:  true,
	},
	domain.CallConnected: {
		evLeave: true,
	},
}

// Notice surfaces a user-visible call message, such as the remote side
// hanging up.
type Notice func(text string)

type Machine struct {
	log     *slog.Logger
	tokens  contract.TokenSource
	api     contract.RemoteAPI
	channel contract.FrameSender
	media   contract.MediaSession
	view    contract.ConversationView
	notice  Notice

	mu                 sync.Mutex
	state              domain.CallState
	kind               domain.CallKind
	peer               domain.Participant
	conversationID     string
	joined             bool
	micEnabled         bool
	cameraEnabled      bool
	remoteParticipants []string
}

func NewMachine(tokens contract.TokenSource, api contract.RemoteAPI,
	channel contract.FrameSender, media contract.MediaSession,
	view contract.ConversationView, log *slog.Logger) *Machine {
	return &Machine{
		log:     log,
		tokens:  tokens,
		api:     api,
		channel: channel,
		media:   media,
		view:    view,
		state:   domain.CallIdle,
	}
}

// WithNotice attaches the user-visible notice callback.
func (m *Machine) WithNotice(fn Notice) *Machine {
	m.notice = fn
	return m
}

// Allowed reports whether the transition table permits the event from the
// given state.
func Allowed(from domain.CallState, ev string) bool {
	return guards[from][transition(ev)]
}

// Start begins an outgoing call on the active conversation. Only valid
// from idle; any failure during credential fetch or session join reverts
// to idle and clears caller-side state.
func (m *Machine) Start(ctx context.Context, kind domain.CallKind) error {
	identity, ok := m.tokens.Identity()
	if !ok {
		return errors.ErrNoIdentity
	}
	conversationID := m.view.ActiveID()
	if conversationID == "" {
		return errors.ErrNoActiveConversation
	}

	m.mu.Lock()
	if !guards[m.state][evStart] {
		m.mu.Unlock()
		m.log.Debug("Ignoring start, call already in progress", "state", m.state)
		return errors.ErrCallInProgress
	}
	m.state = domain.CallDialing
	m.kind = kind
	m.conversationID = conversationID
	m.peer = m.view.PeerIdentity(conversationID)
	m.micEnabled = true
	m.cameraEnabled = kind == domain.CallVideo
	m.mu.Unlock()

	cred, err := m.api.FetchCallCredential(ctx, conversationID)
	if err != nil {
		m.reset("Call credential fetch failed", err)
		return err
	}

	err = m.channel.Send(wire.SignalFrame{
		Type:           wire.FrameSignal,
		SignalType:     wire.SignalIncoming,
		CallType:       string(kind),
		ConversationID: conversationID,
		SenderID:       identity.ID,
	})
	if err != nil {
		m.reset("Call signal send failed", err)
		return err
	}

	if err := m.media.Join(ctx, cred, kind); err != nil {
		m.reset("Media session join failed", err)
		return err
	}

	m.mu.Lock()
	m.state = domain.CallConnected
	m.joined = true
	m.mu.Unlock()
	return nil
}

// Accept answers an incoming call: fetch our own credential, join the
// media session, transition to connected. Failure tears the call down.
func (m *Machine) Accept(ctx context.Context) error {
	m.mu.Lock()
	if !guards[m.state][evAccept] {
		m.mu.Unlock()
		return errors.ErrNoIncomingCall
	}
	conversationID := m.conversationID
	kind := m.kind
	m.micEnabled = true
	m.cameraEnabled = kind == domain.CallVideo
	m.mu.Unlock()

	cred, err := m.api.FetchCallCredential(ctx, conversationID)
	if err != nil {
		m.log.Warn("Accept failed on credential fetch", "err", err)
		m.Leave(ctx)
		return err
	}
	if err := m.media.Join(ctx, cred, kind); err != nil {
		m.log.Warn("Accept failed on media join", "err", err)
		m.Leave(ctx)
		return err
	}

	m.mu.Lock()
	m.state = domain.CallConnected
	m.joined = true
	m.mu.Unlock()
	return nil
}

// Leave exits from any non-idle state. Local cleanup is unconditional so
// a failed remote leave can never wedge the machine; the outbound end
// signal is emitted only when the call had connected.
func (m *Machine) Leave(ctx context.Context) {
	m.mu.Lock()
	if !guards[m.state][evLeave] {
		m.mu.Unlock()
		return
	}
	wasConnected := m.state == domain.CallConnected
	conversationID := m.conversationID
	kind := m.kind
	joined := m.joined
	m.mu.Unlock()

	m.media.ReleaseLocalMedia()
	// Only a joined session has anything to leave; Accept can fail before
	// the join ever happened.
	if joined {
		if err := m.media.Leave(ctx); err != nil {
			m.log.Warn("Media session leave failed, cleaning up anyway", "err", err)
		}
	}

	if wasConnected {
		identity, _ := m.tokens.Identity()
		err := m.channel.Send(wire.SignalFrame{
			Type:           wire.FrameSignal,
			SignalType:     wire.SignalEnd,
			CallType:       string(kind),
			ConversationID: conversationID,
			SenderID:       identity.ID,
		})
		if err != nil {
			m.log.Warn("End signal send failed", "err", err)
		}
	}

	m.clear()
}

// HandleSignal applies an inbound signal frame from the push channel.
func (m *Machine) HandleSignal(ctx context.Context, sig wire.Signal) {
	switch sig.SignalType {
	case wire.SignalIncoming:
		m.handleIncoming(ctx, sig)
	case wire.SignalEnd:
		m.handleEnd(ctx, sig)
	default:
		m.log.Warn("Dropping signal with unknown discriminant", "signal_type", sig.SignalType)
	}
}

func (m *Machine) handleIncoming(ctx context.Context, sig wire.Signal) {
	if identity, ok := m.tokens.Identity(); ok && identity.ID == sig.SenderID {
		// Echo of our own signal.
		return
	}

	m.mu.Lock()
	if !guards[m.state][evIncoming] {
		m.mu.Unlock()
		m.log.Debug("Ignoring incoming signal, call already in progress",
			"state", m.state, "conversation", sig.ConversationID)
		return
	}
	m.state = domain.CallIncoming
	m.kind = domain.CallKind(sig.CallType)
	m.conversationID = sig.ConversationID
	m.mu.Unlock()

	m.view.Pin(ctx, sig.ConversationID)

	m.mu.Lock()
	if m.state == domain.CallIncoming {
		m.peer = m.view.PeerIdentity(sig.ConversationID)
	}
	m.mu.Unlock()
}

func (m *Machine) handleEnd(ctx context.Context, sig wire.Signal) {
	m.mu.Lock()
	addressed := m.state != domain.CallIdle && m.conversationID == sig.ConversationID
	m.mu.Unlock()
	if !addressed {
		return
	}

	m.Leave(ctx)
	if m.notice != nil {
		m.notice("Call ended by " + sig.SenderID)
	}
}

// Session returns a snapshot for the UI.
func (m *Machine) Session() domain.CallSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.CallSession{
		State:          m.state,
		Kind:           m.kind,
		Peer:           m.peer,
		ConversationID: m.conversationID,
		MicEnabled:     m.micEnabled,
		CameraEnabled:  m.cameraEnabled,
	}
}

// RemoteParticipants returns the media-session peer list.
func (m *Machine) RemoteParticipants() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.remoteParticipants...)
}

// SetRemoteParticipants is fed by the media session's roster callbacks.
func (m *Machine) SetRemoteParticipants(ids []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remoteParticipants = append([]string{}, ids...)
}

func (m *Machine) reset(cause string, err error) {
	m.log.Warn(cause+", reverting to idle", "err", err)
	m.media.ReleaseLocalMedia()
	m.clear()
}

func (m *Machine) clear() {
	m.mu.Lock()
	m.state = domain.CallIdle
	m.kind = ""
	m.peer = domain.Participant{}
	m.conversationID = ""
	m.joined = false
	m.micEnabled = false
	m.cameraEnabled = false
	m.remoteParticipants = nil
	m.mu.Unlock()
}
