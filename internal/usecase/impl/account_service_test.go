package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"simsure/internal/domain/entity"
	domainerrors "simsure/internal/domain/errors"
	"simsure/internal/domain/repository"
	mockRepo "simsure/internal/mocks/repository"
	mockSvc "simsure/internal/mocks/service"
	"simsure/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	qrcodeSvc   *mockSvc.MockQRCodeService
	objectStore *mockSvc.MockObjectStore
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	objectStore := mockSvc.NewMockObjectStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAccountService(accountRepo, qrcodeSvc, objectStore, logger)

	return accountServiceFixtures{
		service:     svc,
		accountRepo: accountRepo,
		qrcodeSvc:   qrcodeSvc,
		objectStore: objectStore,
	}
}

func protectionInput() *usecase.ProtectionProfileInput {
	return &usecase.ProtectionProfileInput{
		LinkedNumber: "0821234567",
		IDNumber:     "8001015009087",
		EmailAlerts:  true,
		AlertEmail:   "thandi@example.com",
		NextOfKin: []usecase.NextOfKinInput{
			{Name: "Sipho Mokoena", Number: "0837654321"},
		},
		BankAccounts: []usecase.BankAccountInput{
			{BankName: "FNB", AccountNumber: "62001234567"},
		},
		CoverageAmount: 350000,
		Active:         true,
	}
}

func TestAccountService_RegisterAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterAccountInput{
		FullName:    "Thandi Mokoena",
		Email:       "thandi@example.com",
		PhoneNumber: "0821234567",
		Protection:  protectionInput(),
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	output, err := fx.service.RegisterAccount(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	account := output.Account
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "en", account.Language)
	assert.Equal(t, int64(1), account.Version)
	require.NotNil(t, account.SimProtection)
	assert.Equal(t, "8001015009087", account.SimProtection.IDNumber)
	require.Len(t, account.SimProtection.NextOfKin, 1)
	assert.NotEqual(t, uuid.Nil, account.SimProtection.NextOfKin[0].ID)
	require.Len(t, account.SimProtection.BankAccounts, 1)
	assert.NotEqual(t, uuid.Nil, account.SimProtection.BankAccounts[0].ID)
}

func TestAccountService_RegisterAccount_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterAccountInput{
		FullName:    "Thandi Mokoena",
		Email:       "thandi@example.com",
		PhoneNumber: "0821234567",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.RegisterAccount(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_RegisterAccount_BadIDNumber(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	protection := protectionInput()
	protection.IDNumber = "8001015009086" // check digit off by one
	input := &usecase.RegisterAccountInput{
		FullName:    "Thandi Mokoena",
		Email:       "thandi@example.com",
		PhoneNumber: "0821234567",
		Protection:  protection,
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.RegisterAccount(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIDNumber)
}

func TestAccountService_RegisterAccount_BadPhoneNumber(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterAccountInput{
		FullName:    "Thandi Mokoena",
		Email:       "thandi@example.com",
		PhoneNumber: "12345",
	}

	output, err := fx.service.RegisterAccount(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_UpsertProtectionProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := protectedAccount()
	originalKinID := account.SimProtection.NextOfKin[0].ID

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)

	input := protectionInput()
	input.BaseVersion = account.Version
	input.CoverageAmount = 500000

	err := fx.service.UpsertProtectionProfile(ctx, account.ID, input)

	require.NoError(t, err)
	assert.Equal(t, int64(500000), account.SimProtection.CoverageAmount)
	// Same kin number keeps its stable ID across the edit.
	assert.Equal(t, originalKinID, account.SimProtection.NextOfKin[0].ID)
}

func TestAccountService_UpsertProtectionProfile_StaleVersion(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := protectedAccount()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	input := protectionInput()
	input.BaseVersion = account.Version - 1

	err := fx.service.UpsertProtectionProfile(ctx, account.ID, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
}

func TestAccountService_UpsertProtectionProfile_MissingKin(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := protectedAccount()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	input := protectionInput()
	input.NextOfKin = nil

	err := fx.service.UpsertProtectionProfile(ctx, account.ID, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_ChangeLanguage(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := protectedAccount()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)

	err := fx.service.ChangeLanguage(ctx, account.ID, &usecase.ChangeLanguageInput{Language: "zu"})

	require.NoError(t, err)
	assert.Equal(t, "zu", account.Language)
}

func TestAccountService_GetSummary(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := protectedAccount()
	account.SimProtection.CreditLockActive = true

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	summary, err := fx.service.GetSummary(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, 85, summary.SecurityScore)
	assert.Equal(t, 0, summary.ActiveAlertCount)
	assert.Equal(t, "350K", summary.CoverageTotal)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetAccount(ctx, id)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_EnrollmentQR(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := protectedAccount()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.qrcodeSvc.EXPECT().GenerateEnrollmentQR(account.ID).Return(png, nil)

	data, err := fx.service.EnrollmentQR(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestAccountService_StoreFaceCapture(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := protectedAccount()
	require.False(t, account.FaceEnrolled)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.objectStore.EXPECT().
		SaveStream(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return(nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)

	err := fx.service.StoreFaceCapture(ctx, account.ID, &usecase.FaceCaptureInput{
		ContentType: "image/jpeg",
		Data:        bytes.NewReader([]byte("jpeg-bytes")),
	})

	require.NoError(t, err)
	assert.True(t, account.FaceEnrolled)
}

func TestAccountService_StoreFaceCapture_AlreadyEnrolled(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := protectedAccount()
	account.FaceEnrolled = true

	// No Update expectation: an already enrolled account is not rewritten.
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.objectStore.EXPECT().
		SaveStream(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return(nil)

	err := fx.service.StoreFaceCapture(ctx, account.ID, &usecase.FaceCaptureInput{
		ContentType: "image/jpeg",
		Data:        bytes.NewReader([]byte("jpeg-bytes")),
	})

	require.NoError(t, err)
}
