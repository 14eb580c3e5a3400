package auth

import (
	"testing"
	"time"

	"verifiedtutors/config"
	"verifiedtutors/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Reset = "reset-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "tutor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "tutor", claims.Role)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
}

func TestJWTService_ResetTokenRoundTrip(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateResetToken(userID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.TokenTypeReset, claims.Type)
	assert.Empty(t, claims.Role)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestService(t)

	other := &config.Config{}
	other.SecretKey.Access = "a-completely-different-secret"
	other.SecretKey.Reset = "another-completely-different-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.GenerateAccessToken(uuid.New(), "student")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Reset = "reset-secret-for-tests"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 2 * time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.GetAccessTokenDuration())
}
