package service

import "context"

// Identity is the verified identity of the current user as attested by the
// hosted authentication provider.
type Identity struct {
	UID   string
	Email string
}

// IdentityProvider verifies identity tokens minted by the hosted
// authentication provider.
type IdentityProvider interface {
	// VerifyIDToken validates the given ID token and returns the identity
	// it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
