package auth

import (
	"testing"

	"localfy/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) (*config.Config, *jwtService) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return cfg, svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	cfg, svc := newTestJWTService(t)

	access, refresh, err := svc.GenerateTokens("uid-1", []string{"user"})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	token, err := svc.ValidateToken(access, cfg.SecretKey.Access)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "uid-1", claims["sub"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_ValidateRejectsWrongSecret(t *testing.T) {
	cfg, svc := newTestJWTService(t)

	access, _, err := svc.GenerateTokens("uid-1", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access, cfg.SecretKey.Refresh)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenCarriesRefreshType(t *testing.T) {
	cfg, svc := newTestJWTService(t)

	_, refresh, err := svc.GenerateTokens("uid-1", []string{"user"})
	require.NoError(t, err)

	token, err := svc.ValidateToken(refresh, cfg.SecretKey.Refresh)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
