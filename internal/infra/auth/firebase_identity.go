package auth

import (
	"context"

	"localfy/config"
	"localfy/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// ErrIdentityTokenInvalid is returned when the provider rejects an ID token.
var ErrIdentityTokenInvalid = errors.New("identity token invalid")

// firebaseIdentity verifies ID tokens minted by Firebase Authentication.
type firebaseIdentity struct {
	client *fbauth.Client
}

// NewFirebaseIdentityProvider creates an IdentityProvider backed by Firebase
// Authentication. Returns nil when Firebase is not configured; per-user
// surfaces are then disabled.
func NewFirebaseIdentityProvider(ctx context.Context, cfg *config.Config) (service.IdentityProvider, error) {
	if cfg.Firebase == nil {
		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseIdentity{client: client}, nil
}

// VerifyIDToken validates the token and returns the asserted identity.
func (p *firebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, ErrIdentityTokenInvalid
	}

	identity := &service.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
