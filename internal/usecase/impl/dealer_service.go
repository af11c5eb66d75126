package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"simsure/internal/domain/entity"
	domainerrors "simsure/internal/domain/errors"
	"simsure/internal/domain/repository"
	"simsure/internal/domain/service"
	"simsure/internal/usecase"
)

// spikeDayThreshold is the daily sale count above which a day counts as a
// volume spike for the fraud scan.
const spikeDayThreshold = 10

// dealerService implements the DealerUsecase interface.
type dealerService struct {
	dealerRepo  repository.DealerRepository
	fraudPolicy service.FraudPolicy
	logger      *slog.Logger
}

// NewDealerService is the constructor for dealerService.
func NewDealerService(
	dealerRepo repository.DealerRepository,
	fraudPolicy service.FraudPolicy,
	logger *slog.Logger,
) usecase.DealerUsecase {
	return &dealerService{
		dealerRepo:  dealerRepo,
		fraudPolicy: fraudPolicy,
		logger:      logger,
	}
}

// RecordSale captures one SIM sale for the dealer.
func (srv *dealerService) RecordSale(ctx context.Context, dealerID uuid.UUID, input *usecase.RecordSaleInput) (*entity.SaleRecord, error) {
	if input == nil || input.SIMNumber == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "record sale")
	}

	now := time.Now().UTC()
	sale := &entity.SaleRecord{
		ID:        uuid.New(),
		DealerID:  dealerID,
		SIMNumber: input.SIMNumber,
		Amount:    input.Amount,
		SoldAt:    input.SoldAt,
		CreatedAt: now,
	}
	if sale.SoldAt.IsZero() {
		sale.SoldAt = now
	}

	if err := srv.dealerRepo.CreateSale(ctx, sale); err != nil {
		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "record sale")
	}

	return sale, nil
}

// ListSales retrieves the dealer's sale history, newest first.
func (srv *dealerService) ListSales(ctx context.Context, dealerID uuid.UUID) ([]*entity.SaleRecord, error) {
	sales, err := srv.dealerRepo.ListSales(ctx, dealerID)
	if err != nil {
		if errors.Is(err, repository.ErrDealerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDealerNotFound, "list sales")
		}

		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "list sales")
	}

	return sales, nil
}

// RecordEwaste captures one e-waste hand-in for the dealer.
func (srv *dealerService) RecordEwaste(ctx context.Context, dealerID uuid.UUID, input *usecase.RecordEwasteInput) (*entity.EwasteLog, error) {
	if input == nil || input.ItemType == "" || input.Quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "record ewaste")
	}

	now := time.Now().UTC()
	log := &entity.EwasteLog{
		ID:          uuid.New(),
		DealerID:    dealerID,
		ItemType:    input.ItemType,
		Quantity:    input.Quantity,
		Description: input.Description,
		LoggedAt:    now,
		CreatedAt:   now,
	}

	if err := srv.dealerRepo.CreateEwasteLog(ctx, log); err != nil {
		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "record ewaste")
	}

	return log, nil
}

// ListEwasteLogs retrieves the dealer's e-waste logs, newest first.
func (srv *dealerService) ListEwasteLogs(ctx context.Context, dealerID uuid.UUID) ([]*entity.EwasteLog, error) {
	logs, err := srv.dealerRepo.ListEwasteLogs(ctx, dealerID)
	if err != nil {
		if errors.Is(err, repository.ErrDealerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDealerNotFound, "list ewaste logs")
		}

		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "list ewaste logs")
	}

	return logs, nil
}

// ScanFraud derives fraud signals from the dealer's sale history, applies
// the risk policy and opens a case for any non-low verdict.
func (srv *dealerService) ScanFraud(ctx context.Context, dealerID uuid.UUID) (*usecase.FraudScanOutput, error) {
	sales, err := srv.ListSales(ctx, dealerID)
	if err != nil {
		return nil, err
	}

	signals, offendingSIM := deriveSignals(sales)
	risk := srv.fraudPolicy.Assess(signals)

	out := &usecase.FraudScanOutput{
		Risk:    risk,
		Signals: signals,
	}
	if risk == entity.RiskLow {
		return out, nil
	}

	now := time.Now().UTC()
	fraudCase := &entity.FraudCase{
		ID:        uuid.New(),
		DealerID:  dealerID,
		SIMNumber: offendingSIM,
		Risk:      risk,
		Signals:   signals,
		Open:      true,
		OpenedAt:  now,
		CreatedAt: now,
	}
	if err := srv.dealerRepo.CreateFraudCase(ctx, fraudCase); err != nil {
		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "scan fraud")
	}
	out.Case = fraudCase

	srv.logger.Warn("Fraud case opened",
		slog.String("dealerID", dealerID.String()),
		slog.String("risk", string(risk)),
		slog.Bool("duplicateSIM", signals.DuplicateSIM),
		slog.Int("spikeCount", signals.SpikeCount),
	)

	return out, nil
}

// ListFraudCases retrieves the dealer's fraud cases, newest first.
func (srv *dealerService) ListFraudCases(ctx context.Context, dealerID uuid.UUID) ([]*entity.FraudCase, error) {
	cases, err := srv.dealerRepo.ListFraudCases(ctx, dealerID)
	if err != nil {
		if errors.Is(err, repository.ErrDealerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDealerNotFound, "list fraud cases")
		}

		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "list fraud cases")
	}

	return cases, nil
}

// deriveSignals scans sales for duplicate SIM numbers and counts spike days.
// A spike day is a calendar day with more sales than spikeDayThreshold. The
// first duplicated SIM found is returned for case attribution.
func deriveSignals(sales []*entity.SaleRecord) (entity.FraudSignals, string) {
	seen := make(map[string]bool, len(sales))
	perDay := make(map[string]int)
	var signals entity.FraudSignals
	var offendingSIM string

	for _, sale := range sales {
		if seen[sale.SIMNumber] {
			signals.DuplicateSIM = true
			if offendingSIM == "" {
				offendingSIM = sale.SIMNumber
			}
		}
		seen[sale.SIMNumber] = true
		perDay[sale.SoldAt.UTC().Format("2006-01-02")]++
	}
	for _, count := range perDay {
		if count > spikeDayThreshold {
			signals.SpikeCount++
		}
	}

	return signals, offendingSIM
}
