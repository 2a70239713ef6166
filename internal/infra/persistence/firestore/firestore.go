// Package firestore implements the repository interfaces on top of the
// hosted document database.
package firestore

import (
	"context"

	"localfy/config"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names used by the application.
const (
	collectionBusinesses = "businesses"
	collectionReviews    = "reviews"
	collectionUsers      = "users"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// NewClient connects to the hosted document database and registers teardown
// on the application lifecycle.
func NewClient(params ClientParams) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firestore configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := firestore.NewClient(params.Ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
