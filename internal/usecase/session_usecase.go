package usecase

import "context"

// Session is a first-party session minted after an identity token exchange.
type Session struct {
	UserID       string `json:"userId"`
	Email        string `json:"email,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SessionUsecase exchanges hosted-identity tokens for first-party sessions.
type SessionUsecase interface {
	// ExchangeIDToken verifies the hosted provider's ID token and issues a
	// session for the asserted identity.
	ExchangeIDToken(ctx context.Context, idToken string) (*Session, error)

	// RefreshSession validates a refresh token and issues a new session.
	RefreshSession(ctx context.Context, refreshToken string) (*Session, error)
}
