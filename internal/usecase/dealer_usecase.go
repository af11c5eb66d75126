package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"simsure/internal/domain/entity"
)

// DealerUsecase covers the distributor back-office: sale capture, e-waste
// logging and fraud scanning.
type DealerUsecase interface {
	RecordSale(ctx context.Context, dealerID uuid.UUID, input *RecordSaleInput) (*entity.SaleRecord, error)
	ListSales(ctx context.Context, dealerID uuid.UUID) ([]*entity.SaleRecord, error)
	RecordEwaste(ctx context.Context, dealerID uuid.UUID, input *RecordEwasteInput) (*entity.EwasteLog, error)
	ListEwasteLogs(ctx context.Context, dealerID uuid.UUID) ([]*entity.EwasteLog, error)

	// ScanFraud derives signals from the dealer's sales, applies the fraud
	// policy and opens a case for any non-low outcome.
	ScanFraud(ctx context.Context, dealerID uuid.UUID) (*FraudScanOutput, error)

	ListFraudCases(ctx context.Context, dealerID uuid.UUID) ([]*entity.FraudCase, error)
}

// --- Input DTOs ---

// RecordSaleInput defines one captured SIM sale.
type RecordSaleInput struct {
	SIMNumber string    `json:"sim_number" validate:"required"`
	Amount    int64     `json:"amount" validate:"gt=0"`
	SoldAt    time.Time `json:"sold_at"`
}

// RecordEwasteInput defines one e-waste hand-in entry.
type RecordEwasteInput struct {
	ItemType    string `json:"item_type" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
	Description string `json:"description"`
}

// --- Output DTOs ---

// FraudScanOutput reports the scan verdict and any case opened by it.
type FraudScanOutput struct {
	Risk    entity.RiskLevel    `json:"risk"`
	Signals entity.FraudSignals `json:"signals"`
	Case    *entity.FraudCase   `json:"case,omitempty"`
}
