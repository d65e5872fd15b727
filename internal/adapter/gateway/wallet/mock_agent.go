package wallet

import (
	"context"
	"time"
)

// MockAgent is a scriptable agent for tests and offline demo runs.
// Zero-value behavior succeeds everywhere with canned values; individual
// operations are failed by setting the corresponding error field.
type MockAgent struct {
	InitializeErr   error
	PublicKeyValue  string
	PublicKeyErr    error
	StartSessionErr error
	Signature       string
	SignErr         error

	initialized bool
	active      bool
	expiry      *time.Time

	// Call records for assertions.
	StartSessionCalls []StartSessionCall
	SignedPayloads    [][]byte
}

// StartSessionCall records the arguments of one StartSession call.
type StartSessionCall struct {
	Code            string
	AuthenticatorID string
}

// NewMockAgent creates a mock that succeeds with plausible canned
// values.
func NewMockAgent() *MockAgent {
	return &MockAgent{
		PublicKeyValue: "mock-public-key",
		Signature:      "mock-signature",
	}
}

func (m *MockAgent) Initialize(_ context.Context) error {
	if m.InitializeErr != nil {
		return m.InitializeErr
	}
	m.initialized = true
	return nil
}

func (m *MockAgent) PublicKey() (string, error) {
	if m.PublicKeyErr != nil {
		return "", m.PublicKeyErr
	}
	return m.PublicKeyValue, nil
}

func (m *MockAgent) StartSession(_ context.Context, code, authenticatorID string) error {
	m.StartSessionCalls = append(m.StartSessionCalls, StartSessionCall{
		Code:            code,
		AuthenticatorID: authenticatorID,
	})
	if m.StartSessionErr != nil {
		return m.StartSessionErr
	}
	m.active = true
	expiry := time.Now().Add(sessionTTL)
	m.expiry = &expiry
	return nil
}

func (m *MockAgent) IsSessionActive() bool {
	return m.active
}

func (m *MockAgent) SessionExpiry() *time.Time {
	return m.expiry
}

func (m *MockAgent) ClearSession() {
	m.active = false
	m.expiry = nil
}

func (m *MockAgent) SignPayoutPayload(_ context.Context, payload []byte) (string, error) {
	m.SignedPayloads = append(m.SignedPayloads, payload)
	if m.SignErr != nil {
		return "", m.SignErr
	}
	return m.Signature, nil
}
