// Package verification implements face verification for the "face"
// authorization policy. Matching proper runs in an external service; this
// verifier validates what the core can check locally before a verdict is
// accepted: the account has an enrolled face and the capture was stored.
package verification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"

	domainerrors "simsure/internal/domain/errors"
	"simsure/internal/domain/repository"
	"simsure/internal/domain/service"
)

type storedCaptureVerifier struct {
	accountRepo repository.AccountRepository
	bucket      *blob.Bucket
	logger      *slog.Logger
}

// NewFaceVerifier builds a verifier backed by the account store and the
// capture bucket.
func NewFaceVerifier(accountRepo repository.AccountRepository, bucket *blob.Bucket, logger *slog.Logger) service.FaceVerifier {
	return &storedCaptureVerifier{
		accountRepo: accountRepo,
		bucket:      bucket,
		logger:      logger,
	}
}

// VerifyFace confirms the account is enrolled and captureRef names a stored
// capture. A missing capture or an unenrolled account fails the challenge.
func (v *storedCaptureVerifier) VerifyFace(ctx context.Context, accountID uuid.UUID, captureRef string) error {
	if captureRef == "" {
		return domainerrors.ErrChallengeFailed.WithDetails("capture reference is required")
	}

	account, err := v.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return domainerrors.ErrPersistenceFailed.WithDetails(err.Error())
	}

	if !account.FaceEnrolled {
		return domainerrors.ErrChallengeFailed.WithDetails("account has no enrolled face")
	}

	exists, err := v.bucket.Exists(ctx, captureRef)
	if err != nil {
		return errors.Wrapf(err, "check capture %s", captureRef)
	}
	if !exists {
		v.logger.Warn("face capture not found",
			slog.String("account_id", accountID.String()),
			slog.String("capture_ref", captureRef))

		return domainerrors.ErrChallengeFailed.WithDetails("capture not found")
	}

	return nil
}
