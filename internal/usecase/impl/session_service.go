package impl

import (
	"context"

	"localfy/config"
	"localfy/internal/domain/service"
	"localfy/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrIdentityUnavailable is returned when no identity provider is configured.
	ErrIdentityUnavailable = errors.New("identity provider not configured")
	// ErrInvalidRefreshToken is returned when the refresh token is rejected.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

type sessionService struct {
	identityProvider service.IdentityProvider
	tokenService     service.TokenService
	config           *config.Config
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	IdentityProvider service.IdentityProvider `optional:"true"`
	TokenService     service.TokenService
	Config           *config.Config
}

// NewSessionService creates a new session service instance
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identityProvider: params.IdentityProvider,
		tokenService:     params.TokenService,
		config:           params.Config,
	}
}

// ExchangeIDToken verifies the hosted provider's ID token and issues a
// first-party session for the asserted identity.
func (s *sessionService) ExchangeIDToken(ctx context.Context, idToken string) (*usecase.Session, error) {
	if s.identityProvider == nil {
		return nil, errors.WithStack(ErrIdentityUnavailable)
	}

	identity, err := s.identityProvider.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify identity token")
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(identity.UID, []string{"user"})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	return &usecase.Session{
		UserID:       identity.UID,
		Email:        identity.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshSession validates a refresh token and issues a new session.
func (s *sessionService) RefreshSession(_ context.Context, refreshToken string) (*usecase.Session, error) {
	token, err := s.tokenService.ValidateToken(refreshToken, s.config.SecretKey.Refresh)
	if err != nil {
		return nil, errors.WithStack(ErrInvalidRefreshToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.WithStack(ErrInvalidRefreshToken)
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, errors.WithStack(ErrInvalidRefreshToken)
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, errors.WithStack(ErrInvalidRefreshToken)
	}

	roles := []string{"user"}
	if rawRoles, ok := claims["roles"].([]any); ok {
		roles = roles[:0]
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	accessToken, newRefreshToken, err := s.tokenService.GenerateTokens(userID, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	return &usecase.Session{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}
