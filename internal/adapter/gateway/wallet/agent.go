// Package wallet wraps the embedded signing agent that holds key
// material for the non-custodial flow. The agent is an opaque
// collaborator: callers never see private keys, only a public key, a
// session and signatures.
package wallet

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotInitialized is returned when an operation requires
	// Initialize to have been called first.
	ErrNotInitialized = errors.New("wallet agent not initialized")

	// ErrNoSession is returned when signing is attempted without an
	// established session.
	ErrNoSession = errors.New("no active wallet session")

	// ErrSessionExpired is returned when the session outlived its TTL.
	ErrSessionExpired = errors.New("wallet session expired")
)

// Agent is the embedded wallet collaborator. One agent instance is
// created during the flow and read, never reassigned, afterwards.
type Agent interface {
	// Initialize prepares key material. It must be called before any
	// other operation.
	Initialize(ctx context.Context) error

	// PublicKey returns the agent's public key. This is a local read,
	// not a network call.
	PublicKey() (string, error)

	// StartSession completes challenge authentication with the email
	// code and the authenticator id issued by the backend.
	StartSession(ctx context.Context, code, authenticatorID string) error

	// IsSessionActive reports whether a non-expired session exists.
	IsSessionActive() bool

	// SessionExpiry returns when the current session expires, or nil
	// without a session.
	SessionExpiry() *time.Time

	// ClearSession drops the current session.
	ClearSession()

	// SignPayoutPayload signs the canonical payout document and returns
	// the encoded signature.
	SignPayoutPayload(ctx context.Context, payload []byte) (string, error)
}

// Status is a point-in-time summary of an agent, for display.
type Status struct {
	Initialized   bool
	SessionActive bool
	SessionExpiry *time.Time
	PublicKey     string
}

// StatusOf summarizes any agent.
func StatusOf(a Agent) Status {
	if a == nil {
		return Status{}
	}
	s := Status{
		Initialized:   true,
		SessionActive: a.IsSessionActive(),
		SessionExpiry: a.SessionExpiry(),
	}
	if pk, err := a.PublicKey(); err == nil {
		s.PublicKey = pk
	}
	return s
}
