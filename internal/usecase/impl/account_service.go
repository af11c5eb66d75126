package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"simsure/internal/domain/entity"
	domainerrors "simsure/internal/domain/errors"
	"simsure/internal/domain/identity"
	"simsure/internal/domain/repository"
	"simsure/internal/domain/service"
	"simsure/internal/usecase"
)

const defaultLanguage = "en"

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	qrcodeSvc   service.QRCodeService
	objectStore service.ObjectStore
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	accountRepo repository.AccountRepository,
	qrcodeSvc service.QRCodeService,
	objectStore service.ObjectStore,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accountRepo: accountRepo,
		qrcodeSvc:   qrcodeSvc,
		objectStore: objectStore,
		logger:      logger,
	}
}

// RegisterAccount creates a new account document, optionally with the SIM
// protection profile captured by the registration wizard.
func (srv *accountService) RegisterAccount(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.RegisterAccountOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "register account")
	}
	if !identity.ValidMobileNumber(input.PhoneNumber) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("phone number is not a valid SA mobile number"), "register account")
	}

	existing, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "register account")
	}
	if existing != nil {
		return nil, errors.Wrap(domainerrors.ErrAccountAlreadyExists, "register account")
	}

	now := time.Now().UTC()
	account := &entity.Account{
		ID:          uuid.New(),
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Language:    input.Language,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if account.Language == "" {
		account.Language = defaultLanguage
	}

	if input.Protection != nil {
		profile, err := buildProfile(input.Protection, now)
		if err != nil {
			return nil, err
		}
		account.SimProtection = profile
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "register account")
	}

	srv.logger.Info("Account registered",
		slog.String("accountID", account.ID.String()),
		slog.Bool("protected", account.SimProtection != nil),
	)

	return &usecase.RegisterAccountOutput{Account: account}, nil
}

// GetAccount retrieves a single account by ID.
func (srv *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "get account")
		}

		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "get account")
	}

	return account, nil
}

// UpsertProtectionProfile creates or replaces the account's protection
// profile. The write is versioned: a stale BaseVersion is rejected with a
// conflict instead of silently clobbering a concurrent edit.
func (srv *accountService) UpsertProtectionProfile(ctx context.Context, accountID uuid.UUID, input *usecase.ProtectionProfileInput) error {
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "upsert protection profile")
	}

	account, err := srv.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if input.BaseVersion != 0 && input.BaseVersion != account.Version {
		return errors.Wrap(domainerrors.ErrVersionConflict, "upsert protection profile")
	}

	now := time.Now().UTC()
	profile, err := buildProfile(input, now)
	if err != nil {
		return err
	}

	// Keep stable sub-record IDs across edits where the entry is unchanged
	// in identity (same number / account number).
	if account.SimProtection != nil {
		carrySubRecordIDs(account.SimProtection, profile)
	}

	account.SimProtection = profile
	account.UpdatedAt = now

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return errors.Wrap(domainerrors.ErrVersionConflict, "upsert protection profile")
		}

		return errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "upsert protection profile")
	}

	srv.logger.Info("Protection profile updated", slog.String("accountID", accountID.String()))

	return nil
}

// ChangeLanguage updates the account's preferred language.
func (srv *accountService) ChangeLanguage(ctx context.Context, accountID uuid.UUID, input *usecase.ChangeLanguageInput) error {
	if input == nil || input.Language == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "change language")
	}

	account, err := srv.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}

	account.Language = input.Language
	account.UpdatedAt = time.Now().UTC()

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return errors.Wrap(domainerrors.ErrVersionConflict, "change language")
		}

		return errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "change language")
	}

	return nil
}

// GetSummary derives the dashboard counters for the account.
func (srv *accountService) GetSummary(ctx context.Context, accountID uuid.UUID) (*entity.Summary, error) {
	account, err := srv.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	summary := entity.ComputeSummary(account)

	return &summary, nil
}

// WatchAccount exposes the live document stream for open dashboards.
func (srv *accountService) WatchAccount(ctx context.Context, accountID uuid.UUID) (<-chan *entity.Account, error) {
	stream, err := srv.accountRepo.Watch(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "watch account")
		}

		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "watch account")
	}

	return stream, nil
}

// EnrollmentQR generates the verification enrollment QR code for the account.
func (srv *accountService) EnrollmentQR(ctx context.Context, accountID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeSvc.GenerateEnrollmentQR(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate enrollment QR")
	}

	return png, nil
}

// StoreFaceCapture archives a face verification capture and marks the
// account as face-enrolled. The capture reader is consumed here; closing it
// stays with the delivery layer so release is guaranteed on cancel paths too.
func (srv *accountService) StoreFaceCapture(ctx context.Context, accountID uuid.UUID, input *usecase.FaceCaptureInput) error {
	if input == nil || input.Data == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "store face capture")
	}

	account, err := srv.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("captures/%s/face-%d", accountID, time.Now().UTC().UnixNano())
	if err := srv.objectStore.SaveStream(ctx, key, input.ContentType, input.Data); err != nil {
		return errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "store face capture")
	}

	if !account.FaceEnrolled {
		account.FaceEnrolled = true
		account.UpdatedAt = time.Now().UTC()
		if err := srv.accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "store face capture")
		}
	}

	srv.logger.Info("Face capture stored",
		slog.String("accountID", accountID.String()),
		slog.String("key", key),
	)

	return nil
}

// buildProfile validates and materializes a protection profile, assigning
// stable IDs to each sub-record.
func buildProfile(input *usecase.ProtectionProfileInput, now time.Time) (*entity.SimProtectionProfile, error) {
	if err := identity.ValidateIDNumber(input.IDNumber); err != nil {
		return nil, errors.Wrap(err, "build protection profile")
	}
	if !identity.ValidMobileNumber(input.LinkedNumber) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("linked number is not a valid SA mobile number"), "build protection profile")
	}
	if len(input.NextOfKin) == 0 || len(input.BankAccounts) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("at least one next of kin and one bank account are required"), "build protection profile")
	}
	if input.EmailAlerts && input.AlertEmail == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("alert email is required when email alerts are enabled"), "build protection profile")
	}

	profile := &entity.SimProtectionProfile{
		LinkedNumber:     input.LinkedNumber,
		IDNumber:         input.IDNumber,
		EmailAlerts:      input.EmailAlerts,
		AlertEmail:       input.AlertEmail,
		AutoLock:         input.AutoLock,
		CoverageAmount:   input.CoverageAmount,
		Active:           input.Active,
		CreditLockActive: input.CreditLockActive,
		CreditLockCover:  input.CreditLockCover,
		DataBrokerActive: input.DataBrokerActive,
		DataBrokerCover:  input.DataBrokerCover,
		UpdatedAt:        now,
	}

	for _, k := range input.NextOfKin {
		if k.Name == "" || k.Number == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("next of kin entries require name and number"), "build protection profile")
		}
		profile.NextOfKin = append(profile.NextOfKin, entity.NextOfKin{
			ID:     uuid.New(),
			Name:   k.Name,
			Number: k.Number,
		})
	}
	for _, b := range input.BankAccounts {
		if b.BankName == "" || b.AccountNumber == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("bank account entries require bank name and account number"), "build protection profile")
		}
		profile.BankAccounts = append(profile.BankAccounts, entity.BankAccount{
			ID:            uuid.New(),
			BankName:      b.BankName,
			AccountNumber: b.AccountNumber,
		})
	}

	return profile, nil
}

// carrySubRecordIDs preserves sub-record identity across profile edits so
// that references held elsewhere stay valid.
func carrySubRecordIDs(old, updated *entity.SimProtectionProfile) {
	for i := range updated.NextOfKin {
		for _, prev := range old.NextOfKin {
			if prev.Number == updated.NextOfKin[i].Number {
				updated.NextOfKin[i].ID = prev.ID

				break
			}
		}
	}
	for i := range updated.BankAccounts {
		for _, prev := range old.BankAccounts {
			if prev.AccountNumber == updated.BankAccounts[i].AccountNumber {
				updated.BankAccounts[i].ID = prev.ID

				break
			}
		}
	}
}
