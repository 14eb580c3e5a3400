package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"verifiedtutors/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "test-client.apps.googleusercontent.com"

func newTestAuthService() *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: testClientID}}

	return NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
}

// buildToken assembles a JWT-shaped token from claims. The signature is
// junk; claim verification is what these tests exercise.
func buildToken(t *testing.T, claims IDTokenClaims) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func validClaims() IDTokenClaims {
	return IDTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "100200300",
		Aud:           testClientID,
		Exp:           time.Now().Add(time.Hour).Unix(),
		Iat:           time.Now().Unix(),
		Email:         "student@example.com",
		EmailVerified: true,
		Name:          "Test Student",
	}
}

func TestVerifyIDToken_Valid(t *testing.T) {
	svc := newTestAuthService()

	user, err := svc.VerifyIDToken(context.Background(), buildToken(t, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "100200300", user.ID)
	assert.Equal(t, "student@example.com", user.Email)
	assert.True(t, user.EmailVerified)
}

func TestVerifyIDToken_Rejections(t *testing.T) {
	svc := newTestAuthService()

	tests := []struct {
		name   string
		mutate func(*IDTokenClaims)
	}{
		{name: "wrong issuer", mutate: func(c *IDTokenClaims) { c.Iss = "https://evil.example.com" }},
		{name: "wrong audience", mutate: func(c *IDTokenClaims) { c.Aud = "someone-else" }},
		{name: "expired", mutate: func(c *IDTokenClaims) { c.Exp = time.Now().Add(-time.Hour).Unix() }},
		{name: "unverified email", mutate: func(c *IDTokenClaims) { c.EmailVerified = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := validClaims()
			tt.mutate(&claims)

			_, err := svc.VerifyIDToken(context.Background(), buildToken(t, claims))
			assert.Error(t, err)
		})
	}
}

func TestVerifyIDToken_Malformed(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.VerifyIDToken(context.Background(), "definitely-not-a-jwt")
	assert.Error(t, err)
}
