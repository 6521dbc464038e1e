package call

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"social-sync/domain"
	"social-sync/errors"
	"social-sync/mocks"
	"social-sync/wire"
)

type machineFixture struct {
	machine *Machine
	tokens  *mocks.MockTokenSource
	api     *mocks.MockRemoteAPI
	channel *mocks.MockFrameSender
	media   *mocks.MockMediaSession
	view    *mocks.MockConversationView
}

func newMachineFixture(t *testing.T) *machineFixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenSource(ctrl)
	api := mocks.NewMockRemoteAPI(ctrl)
	channel := mocks.NewMockFrameSender(ctrl)
	media := mocks.NewMockMediaSession(ctrl)
	view := mocks.NewMockConversationView(ctrl)
	return &machineFixture{
		machine: NewMachine(tokens, api, channel, media, view, log),
		tokens:  tokens,
		api:     api,
		channel: channel,
		media:   media,
		view:    view,
	}
}

func TestMachine_Start_VideoCall(t *testing.T) {
	req := require.New(t)
	f := newMachineFixture(t)
	ctx := context.Background()

	cred := domain.CallCredential{Token: "rtc-token", AppID: "app", Channel: "room-c1"}
	f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	f.view.EXPECT().ActiveID().Return("c1")
	f.view.EXPECT().PeerIdentity("c1").Return(domain.Participant{ID: "u2", Name: "Bob Jones"})
	f.api.EXPECT().FetchCallCredential(gomock.Any(), "c1").Return(cred, nil)

	var sent wire.SignalFrame
	f.channel.EXPECT().Send(gomock.Any()).DoAndReturn(func(v any) error {
		sent = v.(wire.SignalFrame)
		return nil
	})
	f.media.EXPECT().Join(gomock.Any(), cred, domain.CallVideo).Return(nil)

	req.NoError(f.machine.Start(ctx, domain.CallVideo))

	req.Equal(wire.SignalIncoming, sent.SignalType)
	req.Equal("video", sent.CallType)
	req.Equal("c1", sent.ConversationID)
	req.Equal("u1", sent.SenderID)

	session := f.machine.Session()
	req.Equal(domain.CallConnected, session.State)
	req.Equal(domain.CallVideo, session.Kind)
	req.Equal("Bob Jones", session.Peer.Name)
	req.True(session.MicEnabled)
	req.True(session.CameraEnabled)
}

func TestMachine_Start_AudioKeepsCameraOff(t *testing.T) {
	req := require.New(t)
	f := newMachineFixture(t)

	f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	f.view.EXPECT().ActiveID().Return("c1")
	f.view.EXPECT().PeerIdentity("c1").Return(domain.Participant{ID: "u2"})
	f.api.EXPECT().FetchCallCredential(gomock.Any(), "c1").Return(domain.CallCredential{}, nil)
	f.channel.EXPECT().Send(gomock.Any()).Return(nil)
	f.media.EXPECT().Join(gomock.Any(), gomock.Any(), domain.CallAudio).Return(nil)

	req.NoError(f.machine.Start(context.Background(), domain.CallAudio))

	session := f.machine.Session()
	req.True(session.MicEnabled)
	req.False(session.CameraEnabled)
}

func TestMachine_Start_Guards(t *testing.T) {
	req := require.New(t)

	t.Run("No identity", func(t *testing.T) {
		f := newMachineFixture(t)
		f.tokens.EXPECT().Identity().Return(domain.Identity{}, false)
		req.ErrorIs(f.machine.Start(context.Background(), domain.CallAudio), errors.ErrNoIdentity)
	})

	t.Run("No active conversation", func(t *testing.T) {
		f := newMachineFixture(t)
		f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true)
		f.view.EXPECT().ActiveID().Return("")
		req.ErrorIs(f.machine.Start(context.Background(), domain.CallAudio), errors.ErrNoActiveConversation)
	})

	t.Run("Already in a call", func(t *testing.T) {
		f := newMachineFixture(t)
		f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
		f.view.EXPECT().ActiveID().Return("c1").AnyTimes()
		f.view.EXPECT().PeerIdentity("c1").Return(domain.Participant{ID: "u2"}).AnyTimes()
		f.api.EXPECT().FetchCallCredential(gomock.Any(), "c1").Return(domain.CallCredential{}, nil)
		f.channel.EXPECT().Send(gomock.Any()).Return(nil)
		f.media.EXPECT().Join(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		req.NoError(f.machine.Start(context.Background(), domain.CallAudio))

		req.ErrorIs(f.machine.Start(context.Background(), domain.CallAudio), errors.ErrCallInProgress)
	})
}

func TestMachine_Start_CredentialFailureRevertsToIdle(t *testing.T) {
	req := require.New(t)
	f := newMachineFixture(t)

	f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	f.view.EXPECT().ActiveID().Return("c1")
	f.view.EXPECT().PeerIdentity("c1").Return(domain.Participant{ID: "u2"})
	f.api.EXPECT().FetchCallCredential(gomock.Any(), "c1").
		Return(domain.CallCredential{}, fmt.Errorf("boom"))
	f.media.EXPECT().ReleaseLocalMedia()

	req.Error(f.machine.Start(context.Background(), domain.CallAudio))

	session := f.machine.Session()
	req.Equal(domain.CallIdle, session.State)
	req.Empty(session.ConversationID)
	req.False(session.MicEnabled)
}

func TestMachine_IncomingSignal(t *testing.T) {
	req := require.New(t)
	f := newMachineFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	// The signaled conversation is pinned so the callee sees who is calling.
	f.view.EXPECT().Pin(gomock.Any(), "c1")
	f.view.EXPECT().PeerIdentity("c1").Return(domain.Participant{ID: "u2", Name: "Bob Jones"})

	f.machine.HandleSignal(ctx, wire.Signal{
		SignalType:     wire.SignalIncoming,
		CallType:       "audio",
		ConversationID: "c1",
		SenderID:       "u2",
	})

	session := f.machine.Session()
	req.Equal(domain.CallIncoming, session.State)
	req.Equal(domain.CallAudio, session.Kind)
	req.Equal("c1", session.ConversationID)
	req.Equal("Bob Jones", session.Peer.Name)
}

func TestMachine_IncomingSignal_OwnEchoIgnored(t *testing.T) {
	req := require.New(t)
	f := newMachineFixture(t)

	f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true)

	f.machine.HandleSignal(context.Background(), wire.Signal{
		SignalType:     wire.SignalIncoming,
		ConversationID: "c1",
		SenderID:       "u1",
	})

	req.Equal(domain.CallIdle, f.machine.Session().State)
}

func TestMachine_IncomingSignal_IgnoredWhileBusy(t *testing.T) {
	req := require.New(t)
	f := newMachineFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	f.view.EXPECT().Pin(gomock.Any(), "c1")
	f.view.EXPECT().PeerIdentity("c1").Return(domain.Participant{ID: "u2"})
	f.machine.HandleSignal(ctx, wire.Signal{
		SignalType: wire.SignalIncoming, CallType: "audio", ConversationID: "c1", SenderID: "u2",
	})

	// A concurrent invite must not steal the session.
	f.machine.HandleSignal(ctx, wire.Signal{
		SignalType: wire.SignalIncoming, CallType: "video", ConversationID: "c9", SenderID: "u3",
	})

	session := f.machine.Session()
	req.Equal("c1", session.ConversationID)
	req.Equal(domain.CallAudio, session.Kind)
}

func TestMachine_Accept(t *testing.T) {
	req := require.New(t)
	f := newMachineFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	f.view.EXPECT().Pin(gomock.Any(), "c1")
	f.view.EXPECT().PeerIdentity("c1").Return(domain.Participant{ID: "u2"})
	f.machine.HandleSignal(ctx, wire.Signal{
		SignalType: wire.SignalIncoming, CallType: "video", ConversationID: "c1", SenderID: "u2",
	})

	cred := domain.CallCredential{Token: "rtc-token"}
	f.api.EXPECT().FetchCallCredential(gomock.Any(), "c1").Return(cred, nil)
	f.media.EXPECT().Join(gomock.Any(), cred, domain.CallVideo).Return(nil)

	req.NoError(f.machine.Accept(ctx))
	req.Equal(domain.CallConnected, f.machine.Session().State)
}

func TestMachine_Accept_FailureNeverLeavesUnjoinedSession(t *testing.T) {
	req := require.New(t)

	incoming := func(f *machineFixture) {
		f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
		f.view.EXPECT().Pin(gomock.Any(), "c1")
		f.view.EXPECT().PeerIdentity("c1").Return(domain.Participant{ID: "u2"})
		f.machine.HandleSignal(context.Background(), wire.Signal{
			SignalType: wire.SignalIncoming, CallType: "audio", ConversationID: "c1", SenderID: "u2",
		})
	}

	t.Run("Credential fetch fails", func(t *testing.T) {
		f := newMachineFixture(t)
		incoming(f)

		f.api.EXPECT().FetchCallCredential(gomock.Any(), "c1").
			Return(domain.CallCredential{}, fmt.Errorf("boom"))
		// No media.Leave expectation: nothing was joined.
		f.media.EXPECT().ReleaseLocalMedia()

		req.Error(f.machine.Accept(context.Background()))
		req.Equal(domain.CallIdle, f.machine.Session().State)
	})

	t.Run("Media join fails", func(t *testing.T) {
		f := newMachineFixture(t)
		incoming(f)

		f.api.EXPECT().FetchCallCredential(gomock.Any(), "c1").Return(domain.CallCredential{}, nil)
		f.media.EXPECT().Join(gomock.Any(), gomock.Any(), domain.CallAudio).Return(fmt.Errorf("boom"))
		f.media.EXPECT().ReleaseLocalMedia()

		req.Error(f.machine.Accept(context.Background()))
		req.Equal(domain.CallIdle, f.machine.Session().State)
	})
}

func TestMachine_Accept_WithoutIncomingCall(t *testing.T) {
	f := newMachineFixture(t)
	require.ErrorIs(t, f.machine.Accept(context.Background()), errors.ErrNoIncomingCall)
}

func TestMachine_Leave_AfterConnect(t *testing.T) {
	req := require.New(t)
	f := newMachineFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	f.view.EXPECT().ActiveID().Return("c1")
	f.view.EXPECT().PeerIdentity("c1").Return(domain.Participant{ID: "u2"})
	f.api.EXPECT().FetchCallCredential(gomock.Any(), "c1").Return(domain.CallCredential{}, nil)
	f.media.EXPECT().Join(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	var frames []wire.SignalFrame
	f.channel.EXPECT().Send(gomock.Any()).DoAndReturn(func(v any) error {
		frames = append(frames, v.(wire.SignalFrame))
		return nil
	}).Times(2)

	req.NoError(f.machine.Start(ctx, domain.CallAudio))

	f.media.EXPECT().ReleaseLocalMedia()
	f.media.EXPECT().Leave(gomock.Any()).Return(nil)
	f.machine.Leave(ctx)

	req.Len(frames, 2)
	req.Equal(wire.SignalEnd, frames[1].SignalType)
	req.Equal("c1", frames[1].ConversationID)
	req.Equal(domain.CallIdle, f.machine.Session().State)
}

func TestMachine_Leave_FromIdleIsNoOp(t *testing.T) {
	f := newMachineFixture(t)
	// No media or channel expectations: nothing may be called.
	f.machine.Leave(context.Background())
	require.Equal(t, domain.CallIdle, f.machine.Session().State)
}

func TestMachine_EndSignal_TearsDownAddressedCall(t *testing.T) {
	req := require.New(t)
	f := newMachineFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	f.view.EXPECT().Pin(gomock.Any(), "c1")
	f.view.EXPECT().PeerIdentity("c1").Return(domain.Participant{ID: "u2"})
	f.machine.HandleSignal(ctx, wire.Signal{
		SignalType: wire.SignalIncoming, CallType: "audio", ConversationID: "c1", SenderID: "u2",
	})

	var notices []string
	f.machine.WithNotice(func(text string) { notices = append(notices, text) })

	// An end for some other conversation leaves the session alone.
	f.machine.HandleSignal(ctx, wire.Signal{
		SignalType: wire.SignalEnd, ConversationID: "c9", SenderID: "u3",
	})
	req.Equal(domain.CallIncoming, f.machine.Session().State)

	// Never joined, so only local devices are released.
	f.media.EXPECT().ReleaseLocalMedia()
	f.machine.HandleSignal(ctx, wire.Signal{
		SignalType: wire.SignalEnd, ConversationID: "c1", SenderID: "u2",
	})

	req.Equal(domain.CallIdle, f.machine.Session().State)
	req.Len(notices, 1)
}

func TestAllowed(t *testing.T) {
	req := require.New(t)

	req.True(Allowed(domain.CallIdle, "start"))
	req.True(Allowed(domain.CallIdle, "incoming"))
	req.False(Allowed(domain.CallIdle, "accept"))
	req.False(Allowed(domain.CallIdle, "leave"))

	req.True(Allowed(domain.CallDialing, "leave"))
	req.False(Allowed(domain.CallDialing, "start"))

	req.True(Allowed(domain.CallIncoming, "accept"))
	req.True(Allowed(domain.CallIncoming, "leave"))

	req.True(Allowed(domain.CallConnected, "leave"))
	req.False(Allowed(domain.CallConnected, "incoming"))
}
