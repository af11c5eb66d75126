package service

import (
	"context"

	"github.com/google/uuid"
)

// Challenge is an issued one-time authorization challenge. The code travels
// out of band to the reviewer; the token travels back with the authorize call.
type Challenge struct {
	Token string // Opaque challenge token to return on authorize.
	Code  string // One-time code, delivered out of band.
}

// ChallengeService gates alert authorization behind a one-time code. Issue
// binds a fresh code to an alert; Verify checks a presented token/code pair
// against that alert.
type ChallengeService interface {
	Issue(ctx context.Context, alertID uuid.UUID) (*Challenge, error)
	Verify(ctx context.Context, alertID uuid.UUID, token, code string) error
}

// FaceVerifier confirms a reviewer's liveness capture against the account's
// enrolled face. The actual matching runs in an external service; the core
// only consumes the verdict.
type FaceVerifier interface {
	VerifyFace(ctx context.Context, accountID uuid.UUID, captureRef string) error
}
