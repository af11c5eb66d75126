package verification

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"

	"simsure/internal/domain/entity"
	domainerrors "simsure/internal/domain/errors"
	"simsure/internal/domain/repository"
	mockRepo "simsure/internal/mocks/repository"
)

func createTestFaceVerifier(t *testing.T) (*storedCaptureVerifier, *mockRepo.MockAccountRepository, *blob.Bucket) {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	accountRepo := mockRepo.NewMockAccountRepository(t)
	verifier := NewFaceVerifier(accountRepo, bucket, slog.New(slog.NewTextHandler(testWriter{t}, nil)))

	return verifier.(*storedCaptureVerifier), accountRepo, bucket
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))

	return len(p), nil
}

func TestVerifyFace_Success(t *testing.T) {
	t.Parallel()

	verifier, accountRepo, bucket := createTestFaceVerifier(t)
	ctx := context.Background()

	accountID := uuid.New()
	accountRepo.EXPECT().FindByID(ctx, accountID).
		Return(&entity.Account{ID: accountID, FaceEnrolled: true}, nil)

	captureRef := "captures/" + accountID.String() + "/face-1"
	require.NoError(t, bucket.WriteAll(ctx, captureRef, []byte("jpeg-bytes"), nil))

	err := verifier.VerifyFace(ctx, accountID, captureRef)
	assert.NoError(t, err)
}

func TestVerifyFace_NotEnrolled(t *testing.T) {
	t.Parallel()

	verifier, accountRepo, _ := createTestFaceVerifier(t)
	ctx := context.Background()

	accountID := uuid.New()
	accountRepo.EXPECT().FindByID(ctx, accountID).
		Return(&entity.Account{ID: accountID}, nil)

	err := verifier.VerifyFace(ctx, accountID, "captures/some-key")
	assert.ErrorIs(t, err, domainerrors.ErrChallengeFailed)
}

func TestVerifyFace_MissingCapture(t *testing.T) {
	t.Parallel()

	verifier, accountRepo, _ := createTestFaceVerifier(t)
	ctx := context.Background()

	accountID := uuid.New()
	accountRepo.EXPECT().FindByID(ctx, accountID).
		Return(&entity.Account{ID: accountID, FaceEnrolled: true}, nil)

	err := verifier.VerifyFace(ctx, accountID, "captures/never-stored")
	assert.ErrorIs(t, err, domainerrors.ErrChallengeFailed)
}

func TestVerifyFace_EmptyCaptureRef(t *testing.T) {
	t.Parallel()

	verifier, _, _ := createTestFaceVerifier(t)

	err := verifier.VerifyFace(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, domainerrors.ErrChallengeFailed)
}

func TestVerifyFace_AccountNotFound(t *testing.T) {
	t.Parallel()

	verifier, accountRepo, _ := createTestFaceVerifier(t)
	ctx := context.Background()

	accountID := uuid.New()
	accountRepo.EXPECT().FindByID(ctx, accountID).
		Return(nil, repository.ErrAccountNotFound)

	err := verifier.VerifyFace(ctx, accountID, "captures/some-key")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
