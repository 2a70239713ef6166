package impl

import (
	"context"
	"testing"

	"localfy/internal/domain/service"
	"localfy/internal/infra/auth"
	mockSvc "localfy/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) (*sessionService, *mockSvc.MockIdentityProvider) {
	t.Helper()

	cfg := newTestConfig()
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	identity := mockSvc.NewMockIdentityProvider(t)
	svc := NewSessionService(SessionServiceParams{
		IdentityProvider: identity,
		TokenService:     tokenService,
		Config:           cfg,
	}).(*sessionService)

	return svc, identity
}

func TestSessionService_ExchangeIDToken(t *testing.T) {
	svc, identity := newTestSessionService(t)
	ctx := context.Background()

	identity.EXPECT().VerifyIDToken(ctx, "provider-token").
		Return(&service.Identity{UID: "uid-1", Email: "dana@example.com"}, nil)

	session, err := svc.ExchangeIDToken(ctx, "provider-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", session.UserID)
	assert.Equal(t, "dana@example.com", session.Email)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
}

func TestSessionService_ExchangeIDToken_NoProvider(t *testing.T) {
	cfg := newTestConfig()
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc := NewSessionService(SessionServiceParams{
		TokenService: tokenService,
		Config:       cfg,
	})

	_, err = svc.ExchangeIDToken(context.Background(), "provider-token")
	assert.ErrorIs(t, err, ErrIdentityUnavailable)
}

func TestSessionService_RefreshSession(t *testing.T) {
	svc, identity := newTestSessionService(t)
	ctx := context.Background()

	identity.EXPECT().VerifyIDToken(ctx, "provider-token").
		Return(&service.Identity{UID: "uid-1"}, nil)

	session, err := svc.ExchangeIDToken(ctx, "provider-token")
	require.NoError(t, err)

	renewed, err := svc.RefreshSession(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", renewed.UserID)
	assert.NotEmpty(t, renewed.AccessToken)
}

func TestSessionService_RefreshSession_RejectsAccessToken(t *testing.T) {
	svc, identity := newTestSessionService(t)
	ctx := context.Background()

	identity.EXPECT().VerifyIDToken(ctx, "provider-token").
		Return(&service.Identity{UID: "uid-1"}, nil)

	session, err := svc.ExchangeIDToken(ctx, "provider-token")
	require.NoError(t, err)

	// An access token signed with the other secret must not refresh.
	_, err = svc.RefreshSession(ctx, session.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = svc.RefreshSession(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
