package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"simsure/internal/domain/entity"
	domainerrors "simsure/internal/domain/errors"
	"simsure/internal/domain/repository"
	"simsure/internal/infra/persistence/model"
)

// dealerRepository implements the repository.DealerRepository interface.
type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository is the constructor for dealerRepository.
func NewDealerRepository(db *gorm.DB) repository.DealerRepository {
	return &dealerRepository{
		db: db,
	}
}

// CreateSale persists a new sale record.
func (repo *dealerRepository) CreateSale(ctx context.Context, sale *entity.SaleRecord) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale record")
	}

	sale.CreatedAt = saleM.CreatedAt

	return nil
}

// ListSales retrieves every sale captured by a dealer, newest first.
func (repo *dealerRepository) ListSales(ctx context.Context, dealerID uuid.UUID) ([]*entity.SaleRecord, error) {
	var saleModels []*model.SaleRecordModel

	if err := repo.db.WithContext(ctx).
		Where("dealer_id = ?", dealerID).
		Order("sold_at DESC").
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.SaleRecord, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, nil
}

// CreateEwasteLog persists a new e-waste hand-in record.
func (repo *dealerRepository) CreateEwasteLog(ctx context.Context, log *entity.EwasteLog) error {
	logM := fromEwasteDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ewaste log")
	}

	log.CreatedAt = logM.CreatedAt

	return nil
}

// ListEwasteLogs retrieves a dealer's e-waste logs, newest first.
func (repo *dealerRepository) ListEwasteLogs(ctx context.Context, dealerID uuid.UUID) ([]*entity.EwasteLog, error) {
	var logModels []*model.EwasteLogModel

	if err := repo.db.WithContext(ctx).
		Where("dealer_id = ?", dealerID).
		Order("logged_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ewaste logs")
	}

	logs := make([]*entity.EwasteLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toEwasteDomain(logM))
	}

	return logs, nil
}

// CreateFraudCase persists a newly opened fraud case.
func (repo *dealerRepository) CreateFraudCase(ctx context.Context, fraudCase *entity.FraudCase) error {
	caseM := fromFraudCaseDomain(fraudCase)

	if err := repo.db.WithContext(ctx).Create(caseM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create fraud case")
	}

	fraudCase.CreatedAt = caseM.CreatedAt

	return nil
}

// ListFraudCases retrieves a dealer's fraud cases, newest first.
func (repo *dealerRepository) ListFraudCases(ctx context.Context, dealerID uuid.UUID) ([]*entity.FraudCase, error) {
	var caseModels []*model.FraudCaseModel

	if err := repo.db.WithContext(ctx).
		Where("dealer_id = ?", dealerID).
		Order("opened_at DESC").
		Find(&caseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list fraud cases")
	}

	cases := make([]*entity.FraudCase, 0, len(caseModels))
	for _, caseM := range caseModels {
		cases = append(cases, toFraudCaseDomain(caseM))
	}

	return cases, nil
}

// --- Mapper Functions ---

func toSaleDomain(data *model.SaleRecordModel) *entity.SaleRecord {
	if data == nil {
		return nil
	}

	return &entity.SaleRecord{
		ID:        data.ID,
		DealerID:  data.DealerID,
		SIMNumber: data.SIMNumber,
		Amount:    data.Amount,
		SoldAt:    data.SoldAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromSaleDomain(data *entity.SaleRecord) *model.SaleRecordModel {
	if data == nil {
		return nil
	}

	return &model.SaleRecordModel{
		ID:        data.ID,
		DealerID:  data.DealerID,
		SIMNumber: data.SIMNumber,
		Amount:    data.Amount,
		SoldAt:    data.SoldAt,
		CreatedAt: data.CreatedAt,
	}
}

func toEwasteDomain(data *model.EwasteLogModel) *entity.EwasteLog {
	if data == nil {
		return nil
	}

	return &entity.EwasteLog{
		ID:          data.ID,
		DealerID:    data.DealerID,
		ItemType:    data.ItemType,
		Quantity:    data.Quantity,
		Description: data.Description,
		LoggedAt:    data.LoggedAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromEwasteDomain(data *entity.EwasteLog) *model.EwasteLogModel {
	if data == nil {
		return nil
	}

	return &model.EwasteLogModel{
		ID:          data.ID,
		DealerID:    data.DealerID,
		ItemType:    data.ItemType,
		Quantity:    data.Quantity,
		Description: data.Description,
		LoggedAt:    data.LoggedAt,
		CreatedAt:   data.CreatedAt,
	}
}

func toFraudCaseDomain(data *model.FraudCaseModel) *entity.FraudCase {
	if data == nil {
		return nil
	}

	return &entity.FraudCase{
		ID:        data.ID,
		DealerID:  data.DealerID,
		SIMNumber: data.SIMNumber,
		Risk:      entity.RiskLevel(data.Risk),
		Signals: entity.FraudSignals{
			DuplicateSIM: data.DuplicateSIM,
			SpikeCount:   data.SpikeCount,
		},
		Open:      data.Open,
		OpenedAt:  data.OpenedAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromFraudCaseDomain(data *entity.FraudCase) *model.FraudCaseModel {
	if data == nil {
		return nil
	}

	return &model.FraudCaseModel{
		ID:           data.ID,
		DealerID:     data.DealerID,
		SIMNumber:    data.SIMNumber,
		Risk:         string(data.Risk),
		DuplicateSIM: data.Signals.DuplicateSIM,
		SpikeCount:   data.Signals.SpikeCount,
		Open:         data.Open,
		OpenedAt:     data.OpenedAt,
		CreatedAt:    data.CreatedAt,
	}
}
