package service

import (
	"context"
	"io"
)

// ObjectStore persists generated artifacts (alert exports, face captures)
// in a blob bucket and returns the stored key.
type ObjectStore interface {
	// Save writes data under key with the given content type.
	Save(ctx context.Context, key, contentType string, data []byte) error

	// SaveStream streams r under key with the given content type. The reader
	// is fully consumed but not closed; the caller owns its lifetime.
	SaveStream(ctx context.Context, key, contentType string, r io.Reader) error
}
