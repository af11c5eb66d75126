package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"simsure/internal/domain/entity"
)

// ErrDealerNotFound is returned when the referenced dealer has no records.
var ErrDealerNotFound = errors.New("dealer not found")

// DealerRepository defines persistence for the distributor back-office:
// sales, e-waste logs and fraud cases.
type DealerRepository interface {
	// CreateSale persists a new sale record.
	CreateSale(ctx context.Context, sale *entity.SaleRecord) error

	// ListSales retrieves every sale captured by a dealer, newest first.
	ListSales(ctx context.Context, dealerID uuid.UUID) ([]*entity.SaleRecord, error)

	// CreateEwasteLog persists a new e-waste hand-in record.
	CreateEwasteLog(ctx context.Context, log *entity.EwasteLog) error

	// ListEwasteLogs retrieves a dealer's e-waste logs, newest first.
	ListEwasteLogs(ctx context.Context, dealerID uuid.UUID) ([]*entity.EwasteLog, error)

	// CreateFraudCase persists a newly opened fraud case.
	CreateFraudCase(ctx context.Context, fraudCase *entity.FraudCase) error

	// ListFraudCases retrieves a dealer's fraud cases, newest first.
	ListFraudCases(ctx context.Context, dealerID uuid.UUID) ([]*entity.FraudCase, error)
}
