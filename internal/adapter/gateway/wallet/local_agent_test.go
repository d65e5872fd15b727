package wallet

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAgentRequiresInitialize(t *testing.T) {
	a := NewLocalAgent()

	_, err := a.PublicKey()
	assert.ErrorIs(t, err, ErrNotInitialized)

	err = a.StartSession(context.Background(), "123456", "auth-1")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = a.SignPayoutPayload(context.Background(), []byte("{}"))
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestLocalAgentPublicKey(t *testing.T) {
	a := NewLocalAgent()
	require.NoError(t, a.Initialize(context.Background()))

	pk, err := a.PublicKey()
	require.NoError(t, err)

	der, err := base64.StdEncoding.DecodeString(pk)
	require.NoError(t, err)
	key, err := x509.ParsePKIXPublicKey(der)
	require.NoError(t, err)
	_, ok := key.(*ecdsa.PublicKey)
	assert.True(t, ok, "public key must be ECDSA")
}

func TestLocalAgentSessionLifecycle(t *testing.T) {
	a := NewLocalAgent()
	require.NoError(t, a.Initialize(context.Background()))

	assert.False(t, a.IsSessionActive())
	assert.Nil(t, a.SessionExpiry())

	require.NoError(t, a.StartSession(context.Background(), "123456", "auth-1"))
	assert.True(t, a.IsSessionActive())
	require.NotNil(t, a.SessionExpiry())

	a.ClearSession()
	assert.False(t, a.IsSessionActive())
}

func TestLocalAgentStartSessionValidation(t *testing.T) {
	a := NewLocalAgent()
	require.NoError(t, a.Initialize(context.Background()))

	assert.Error(t, a.StartSession(context.Background(), "", "auth-1"))
	assert.Error(t, a.StartSession(context.Background(), "123456", ""))
}

func TestLocalAgentSignaturesVerify(t *testing.T) {
	a := NewLocalAgent()
	ctx := context.Background()
	require.NoError(t, a.Initialize(ctx))
	require.NoError(t, a.StartSession(ctx, "123456", "auth-1"))

	payload := []byte(`{"sourceAccountId":"acct-1"}`)
	sig, err := a.SignPayoutPayload(ctx, payload)
	require.NoError(t, err)
	require.NotEmpty(t, sig)

	pk, err := a.PublicKey()
	require.NoError(t, err)
	der, err := base64.StdEncoding.DecodeString(pk)
	require.NoError(t, err)
	parsed, err := x509.ParsePKIXPublicKey(der)
	require.NoError(t, err)
	pub := parsed.(*ecdsa.PublicKey)

	rawSig, err := base64.StdEncoding.DecodeString(sig)
	require.NoError(t, err)
	digest := sha256.Sum256(payload)
	assert.True(t, ecdsa.VerifyASN1(pub, digest[:], rawSig))
}

func TestLocalAgentSignWithoutSession(t *testing.T) {
	a := NewLocalAgent()
	require.NoError(t, a.Initialize(context.Background()))

	_, err := a.SignPayoutPayload(context.Background(), []byte("{}"))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLocalAgentSessionExpiry(t *testing.T) {
	a := NewLocalAgent()
	ctx := context.Background()
	require.NoError(t, a.Initialize(ctx))

	current := time.Now()
	a.now = func() time.Time { return current }
	require.NoError(t, a.StartSession(ctx, "123456", "auth-1"))

	current = current.Add(sessionTTL + time.Second)
	assert.False(t, a.IsSessionActive())
	_, err := a.SignPayoutPayload(ctx, []byte("{}"))
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestNewAgentFactory(t *testing.T) {
	a, err := NewAgent("local")
	require.NoError(t, err)
	_, ok := a.(*LocalAgent)
	assert.True(t, ok)

	a, err = NewAgent("")
	require.NoError(t, err)
	_, ok = a.(*LocalAgent)
	assert.True(t, ok)

	a, err = NewAgent("mock")
	require.NoError(t, err)
	_, ok = a.(*MockAgent)
	assert.True(t, ok)

	_, err = NewAgent("hsm")
	assert.Error(t, err)
}
