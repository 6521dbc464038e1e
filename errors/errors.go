package errors

import "fmt"

var (
	ErrNotConnected         = fmt.Errorf("no live connection")
	ErrNoToken              = fmt.Errorf("no auth token available")
	ErrNoIdentity           = fmt.Errorf("no local identity available")
	ErrNoActiveConversation = fmt.Errorf("no active conversation")
	ErrCallInProgress       = fmt.Errorf("a call is already in progress")
	ErrNoIncomingCall       = fmt.Errorf("no incoming call to accept")
	ErrUnknownFrame         = fmt.Errorf("unknown frame discriminant")
	ErrUnknownSignal        = fmt.Errorf("unknown signal discriminant")
	ErrEmptyWords           = fmt.Errorf("no words have been found")
)
