// Package domain contains core concepts of the synchronization layer.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

const (
	UnknownUserName = "Unknown User"
	DefaultAvatar   = "/placeholder.svg"
)

type Participant struct {
	ID     string
	Name   string
	Avatar string
}

// Stub reports whether the participant still lacks a resolved display
// identity. A name is what resolution is for, so an avatar alone does not
// count. Stubs are valid list members, they just render with fallbacks.
func (p Participant) Stub() bool {
	return p.Name == ""
}
