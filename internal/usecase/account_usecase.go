// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	"simsure/internal/domain/entity"
)

// AccountUsecase defines the interface for account-related business operations.
type AccountUsecase interface {
	RegisterAccount(ctx context.Context, input *RegisterAccountInput) (*RegisterAccountOutput, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpsertProtectionProfile(ctx context.Context, accountID uuid.UUID, input *ProtectionProfileInput) error
	ChangeLanguage(ctx context.Context, accountID uuid.UUID, input *ChangeLanguageInput) error
	GetSummary(ctx context.Context, accountID uuid.UUID) (*entity.Summary, error)
	WatchAccount(ctx context.Context, accountID uuid.UUID) (<-chan *entity.Account, error)
	EnrollmentQR(ctx context.Context, accountID uuid.UUID) ([]byte, error)
	StoreFaceCapture(ctx context.Context, accountID uuid.UUID, input *FaceCaptureInput) error
}

// --- Input DTOs ---

// RegisterAccountInput defines the data captured by the registration wizard.
type RegisterAccountInput struct {
	FullName    string                  `json:"full_name" validate:"required"`
	Email       string                  `json:"email" validate:"required,email"`
	PhoneNumber string                  `json:"phone_number" validate:"required,zamobile"`
	Language    string                  `json:"language" validate:"omitempty,bcp47_language_tag"`
	Protection  *ProtectionProfileInput `json:"protection,omitempty"`
}

// ProtectionProfileInput defines the SIM protection configuration payload.
type ProtectionProfileInput struct {
	LinkedNumber   string             `json:"linked_number" validate:"required,zamobile"`
	IDNumber       string             `json:"id_number" validate:"required,said"`
	EmailAlerts    bool               `json:"email_alerts"`
	AlertEmail     string             `json:"alert_email" validate:"required_if=EmailAlerts true,omitempty,email"`
	AutoLock       bool               `json:"auto_lock"`
	NextOfKin      []NextOfKinInput   `json:"next_of_kin" validate:"required,min=1,dive"`
	BankAccounts   []BankAccountInput `json:"bank_accounts" validate:"required,min=1,dive"`
	CoverageAmount int64              `json:"coverage_amount" validate:"gte=0"`
	Active         bool               `json:"active"`

	CreditLockActive bool  `json:"credit_lock_active"`
	CreditLockCover  int64 `json:"credit_lock_cover" validate:"gte=0"`
	DataBrokerActive bool  `json:"data_broker_active"`
	DataBrokerCover  int64 `json:"data_broker_cover" validate:"gte=0"`

	// BaseVersion is the account document version the edit was based on.
	// A stale version is rejected with a conflict.
	BaseVersion int64 `json:"base_version" validate:"gte=0"`
}

// NextOfKinInput defines one emergency contact entry.
type NextOfKinInput struct {
	Name   string `json:"name" validate:"required"`
	Number string `json:"number" validate:"required,zamobile"`
}

// BankAccountInput defines one linked bank account entry.
type BankAccountInput struct {
	BankName      string `json:"bank_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required,numeric"`
}

// ChangeLanguageInput defines a preferred-language change.
type ChangeLanguageInput struct {
	Language string `json:"language" validate:"required"`
}

// FaceCaptureInput carries a face verification capture stream. The usecase
// consumes the reader; the delivery layer owns closing it on every path.
type FaceCaptureInput struct {
	ContentType string
	Data        io.Reader
}

// --- Output DTOs ---

// RegisterAccountOutput is returned after successful registration.
type RegisterAccountOutput struct {
	Account *entity.Account `json:"account"`
}
