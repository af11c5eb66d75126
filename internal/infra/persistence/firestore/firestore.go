// Package firestore implements account persistence on the Firestore
// document store. Each account is one document with its protection profile
// and alert history embedded.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAccountCollection = "accounts"

// NewClient returns the Firestore client bound to the shared Firebase app.
// The client is closed on fx shutdown.
func NewClient(lc fx.Lifecycle, ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
