package domain

type CallState string

const (
	CallIdle      CallState = "idle"
	CallDialing   CallState = "dialing"
	CallIncoming  CallState = "incoming"
	CallConnected CallState = "connected"
)

type CallKind string

const (
	CallAudio CallKind = "audio"
	CallVideo CallKind = "video"
)

// CallSession is a snapshot of the signaling machine for the UI.
// At most one non-idle session exists process-wide.
type CallSession struct {
	State          CallState
	Kind           CallKind
	Peer           Participant
	ConversationID string
	MicEnabled     bool
	CameraEnabled  bool
}

// CallCredential is the session grant consumed by the external
// real-time-media session object.
type CallCredential struct {
	Token   string
	AppID   string
	Channel string
}
