package wallet

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"time"
)

// sessionTTL matches the embedded SDK's client session lifetime.
const sessionTTL = 15 * time.Minute

// LocalAgent keeps an ECDSA P-256 keypair in process memory. The key
// never leaves the agent; the flow only sees the PKIX public key and
// DER signatures. Session bookkeeping mirrors the hosted SDK: a session
// is opened by challenge code and expires after a fixed TTL.
type LocalAgent struct {
	key     *ecdsa.PrivateKey
	session *session
	now     func() time.Time
}

type session struct {
	authenticatorID string
	expiresAt       time.Time
}

// NewLocalAgent creates an uninitialized local agent.
func NewLocalAgent() *LocalAgent {
	return &LocalAgent{now: time.Now}
}

// Initialize generates the keypair. Calling it again rotates the key
// and drops any session.
func (a *LocalAgent) Initialize(_ context.Context) error {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate keypair: %w", err)
	}
	a.key = key
	a.session = nil
	return nil
}

// PublicKey returns the base64-encoded PKIX public key.
func (a *LocalAgent) PublicKey() (string, error) {
	if a.key == nil {
		return "", ErrNotInitialized
	}
	der, err := x509.MarshalPKIXPublicKey(&a.key.PublicKey)
	if err != nil {
		return "", fmt.Errorf("encode public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(der), nil
}

// StartSession opens a signing session for the verified authenticator.
func (a *LocalAgent) StartSession(_ context.Context, code, authenticatorID string) error {
	if a.key == nil {
		return ErrNotInitialized
	}
	if code == "" {
		return fmt.Errorf("verification code is required")
	}
	if authenticatorID == "" {
		return fmt.Errorf("authenticator id is required")
	}
	a.session = &session{
		authenticatorID: authenticatorID,
		expiresAt:       a.now().Add(sessionTTL),
	}
	return nil
}

// IsSessionActive reports whether a session exists and has not expired.
func (a *LocalAgent) IsSessionActive() bool {
	return a.session != nil && a.now().Before(a.session.expiresAt)
}

// SessionExpiry returns the current session's expiry.
func (a *LocalAgent) SessionExpiry() *time.Time {
	if a.session == nil {
		return nil
	}
	t := a.session.expiresAt
	return &t
}

// ClearSession drops the session. The keypair survives.
func (a *LocalAgent) ClearSession() {
	a.session = nil
}

// SignPayoutPayload signs the SHA-256 digest of the payload and returns
// the DER signature base64-encoded.
func (a *LocalAgent) SignPayoutPayload(_ context.Context, payload []byte) (string, error) {
	if a.key == nil {
		return "", ErrNotInitialized
	}
	if a.session == nil {
		return "", ErrNoSession
	}
	if !a.now().Before(a.session.expiresAt) {
		return "", ErrSessionExpired
	}
	digest := sha256.Sum256(payload)
	sig, err := ecdsa.SignASN1(rand.Reader, a.key, digest[:])
	if err != nil {
		return "", fmt.Errorf("sign payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}
