package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"simsure/internal/domain/entity"
	domainerrors "simsure/internal/domain/errors"
	"simsure/internal/domain/service"
	mockRepo "simsure/internal/mocks/repository"
	"simsure/internal/usecase"
)

// dealerServiceFixtures holds all test dependencies for dealer service tests.
type dealerServiceFixtures struct {
	service    usecase.DealerUsecase
	dealerRepo *mockRepo.MockDealerRepository
}

func createTestDealerService(t *testing.T) dealerServiceFixtures {
	dealerRepo := mockRepo.NewMockDealerRepository(t)
	policy := service.NewThresholdFraudPolicy(0, 0)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewDealerService(dealerRepo, policy, logger)

	return dealerServiceFixtures{
		service:    svc,
		dealerRepo: dealerRepo,
	}
}

func saleOn(dealerID uuid.UUID, sim string, day time.Time) *entity.SaleRecord {
	return &entity.SaleRecord{
		ID:        uuid.New(),
		DealerID:  dealerID,
		SIMNumber: sim,
		Amount:    9900,
		SoldAt:    day,
		CreatedAt: day,
	}
}

func TestDealerService_RecordSale(t *testing.T) {
	fx := createTestDealerService(t)

	ctx := context.Background()
	dealerID := uuid.New()

	fx.dealerRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.SaleRecord")).
		Return(nil)

	sale, err := fx.service.RecordSale(ctx, dealerID, &usecase.RecordSaleInput{
		SIMNumber: "27820000001",
		Amount:    9900,
	})

	require.NoError(t, err)
	assert.Equal(t, dealerID, sale.DealerID)
	assert.NotEqual(t, uuid.Nil, sale.ID)
	assert.False(t, sale.SoldAt.IsZero())
}

func TestDealerService_RecordSale_MissingSIM(t *testing.T) {
	fx := createTestDealerService(t)

	sale, err := fx.service.RecordSale(context.Background(), uuid.New(), &usecase.RecordSaleInput{
		Amount: 9900,
	})

	require.Error(t, err)
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDealerService_RecordEwaste(t *testing.T) {
	fx := createTestDealerService(t)

	ctx := context.Background()
	dealerID := uuid.New()

	fx.dealerRepo.EXPECT().
		CreateEwasteLog(ctx, mock.AnythingOfType("*entity.EwasteLog")).
		Return(nil)

	log, err := fx.service.RecordEwaste(ctx, dealerID, &usecase.RecordEwasteInput{
		ItemType: "sim-card",
		Quantity: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, "sim-card", log.ItemType)
	assert.Equal(t, 40, log.Quantity)
}

func TestDealerService_ScanFraud_CleanHistory(t *testing.T) {
	fx := createTestDealerService(t)

	ctx := context.Background()
	dealerID := uuid.New()
	day := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	fx.dealerRepo.EXPECT().ListSales(ctx, dealerID).Return([]*entity.SaleRecord{
		saleOn(dealerID, "27820000001", day),
		saleOn(dealerID, "27820000002", day),
	}, nil)

	output, err := fx.service.ScanFraud(ctx, dealerID)

	require.NoError(t, err)
	assert.Equal(t, entity.RiskLow, output.Risk)
	assert.False(t, output.Signals.DuplicateSIM)
	assert.Zero(t, output.Signals.SpikeCount)
	assert.Nil(t, output.Case)
}

func TestDealerService_ScanFraud_DuplicateSIMOpensHighCase(t *testing.T) {
	fx := createTestDealerService(t)

	ctx := context.Background()
	dealerID := uuid.New()
	day := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	fx.dealerRepo.EXPECT().ListSales(ctx, dealerID).Return([]*entity.SaleRecord{
		saleOn(dealerID, "27820000001", day),
		saleOn(dealerID, "27820000001", day.Add(48*time.Hour)),
	}, nil)
	fx.dealerRepo.EXPECT().
		CreateFraudCase(ctx, mock.AnythingOfType("*entity.FraudCase")).
		Return(nil)

	output, err := fx.service.ScanFraud(ctx, dealerID)

	require.NoError(t, err)
	assert.Equal(t, entity.RiskHigh, output.Risk)
	assert.True(t, output.Signals.DuplicateSIM)
	require.NotNil(t, output.Case)
	assert.Equal(t, "27820000001", output.Case.SIMNumber)
	assert.True(t, output.Case.Open)
}

func TestDealerService_ScanFraud_SpikeDaysOpenMediumCase(t *testing.T) {
	fx := createTestDealerService(t)

	ctx := context.Background()
	dealerID := uuid.New()

	// Three days each above the daily spike threshold: medium risk
	// (above 2, not above 5).
	var sales []*entity.SaleRecord
	for d := 0; d < 3; d++ {
		day := time.Date(2026, 8, 10+d, 0, 0, 0, 0, time.UTC)
		for i := 0; i < spikeDayThreshold+1; i++ {
			sim := uuid.NewString()
			sales = append(sales, saleOn(dealerID, sim, day.Add(time.Duration(i)*time.Minute)))
		}
	}

	fx.dealerRepo.EXPECT().ListSales(ctx, dealerID).Return(sales, nil)
	fx.dealerRepo.EXPECT().
		CreateFraudCase(ctx, mock.AnythingOfType("*entity.FraudCase")).
		Return(nil)

	output, err := fx.service.ScanFraud(ctx, dealerID)

	require.NoError(t, err)
	assert.Equal(t, entity.RiskMedium, output.Risk)
	assert.Equal(t, 3, output.Signals.SpikeCount)
	require.NotNil(t, output.Case)
	assert.Empty(t, output.Case.SIMNumber)
}

func TestDealerService_ListFraudCases(t *testing.T) {
	fx := createTestDealerService(t)

	ctx := context.Background()
	dealerID := uuid.New()
	cases := []*entity.FraudCase{
		{ID: uuid.New(), DealerID: dealerID, Risk: entity.RiskHigh, Open: true},
	}

	fx.dealerRepo.EXPECT().ListFraudCases(ctx, dealerID).Return(cases, nil)

	got, err := fx.service.ListFraudCases(ctx, dealerID)

	require.NoError(t, err)
	assert.Equal(t, cases, got)
}
