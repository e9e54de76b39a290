package oidc

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "study-client"

func signToken(t *testing.T, key *rsa.PrivateKey, claims map[string]interface{}) string {
	t.Helper()
	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.RS256, Key: key}, (&jose.SignerOptions{}).WithType("JWT"))
	require.NoError(t, err)

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	obj, err := signer.Sign(payload)
	require.NoError(t, err)

	raw, err := obj.CompactSerialize()
	require.NoError(t, err)
	return raw
}

func newTestVerifier(t *testing.T) (*GoogleVerifier, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}
	return NewVerifier(oidc.NewVerifier(GoogleIssuer, keySet, &oidc.Config{ClientID: testClientID})), key
}

func baseClaims() map[string]interface{} {
	now := time.Now()
	return map[string]interface{}{
		"iss":            GoogleIssuer,
		"sub":            "1099",
		"aud":            testClientID,
		"iat":            now.Unix(),
		"exp":            now.Add(time.Hour).Unix(),
		"email":          "ada@example.com",
		"email_verified": true,
		"name":           "Ada Lovelace",
	}
}

func TestGoogleVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	verifier, key := newTestVerifier(t)

	t.Run("valid token", func(t *testing.T) {
		identity, err := verifier.Verify(ctx, signToken(t, key, baseClaims()))

		require.NoError(t, err)
		assert.Equal(t, "1099", identity.Subject)
		assert.Equal(t, "ada@example.com", identity.Email)
		assert.True(t, identity.EmailVerified)
		assert.Equal(t, "Ada Lovelace", identity.Name)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := baseClaims()
		claims["aud"] = "someone-else"

		_, err := verifier.Verify(ctx, signToken(t, key, claims))
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := baseClaims()
		claims["exp"] = time.Now().Add(-time.Hour).Unix()

		_, err := verifier.Verify(ctx, signToken(t, key, claims))
		assert.Error(t, err)
	})

	t.Run("signed by another key", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, signToken(t, other, baseClaims()))
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "not-a-jwt")
		assert.Error(t, err)
	})
}

func TestNewGoogleVerifier_RequiresClientID(t *testing.T) {
	_, err := NewGoogleVerifier(context.Background(), "")
	assert.Error(t, err)
}
