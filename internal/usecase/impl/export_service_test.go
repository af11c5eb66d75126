package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"simsure/config"
	"simsure/internal/domain/constants"
	"simsure/internal/domain/entity"
	mockRepo "simsure/internal/mocks/repository"
	mockSvc "simsure/internal/mocks/service"
	"simsure/internal/usecase"
)

// exportServiceFixtures holds all test dependencies for export service tests.
type exportServiceFixtures struct {
	service     usecase.ExportUsecase
	accountRepo *mockRepo.MockAccountRepository
	exporter    *mockSvc.MockAlertExporter
	objectStore *mockSvc.MockObjectStore
}

func createTestExportService(t *testing.T) exportServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	exporter := mockSvc.NewMockAlertExporter(t)
	objectStore := mockSvc.NewMockObjectStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Authorization: &config.AuthorizationConfig{Policy: constants.AuthorizationPolicyNone},
	}
	alertSvc := NewAlertService(accountRepo, nil, nil, nil, nil, nil, cfg, logger)
	svc := NewExportService(alertSvc, exporter, objectStore, logger)

	return exportServiceFixtures{
		service:     svc,
		accountRepo: accountRepo,
		exporter:    exporter,
		objectStore: objectStore,
	}
}

func TestExportService_ExportCSV(t *testing.T) {
	fx := createTestExportService(t)

	ctx := context.Background()
	account := protectedAccount()
	account.Alerts = []entity.Alert{
		entity.NewAlert("0821234567", []string{"FNB"}, nil, time.Now().UTC()),
	}
	rendered := []byte("SIM,Time,Status,Authorized By,Authorization Time\n")

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.exporter.EXPECT().RenderCSV(account.Alerts).Return(rendered, nil)
	fx.objectStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "text/csv", rendered).
		Return(nil)

	output, err := fx.service.ExportCSV(ctx, account.ID, nil)

	require.NoError(t, err)
	assert.Equal(t, "text/csv", output.ContentType)
	assert.Equal(t, rendered, output.Data)
	assert.Contains(t, output.Filename, ".csv")
}

func TestExportService_ExportPDF_ArchiveFailureIsNotFatal(t *testing.T) {
	fx := createTestExportService(t)

	ctx := context.Background()
	account := protectedAccount()
	rendered := []byte("%PDF-1.4")

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.exporter.EXPECT().RenderPDF(mock.Anything).Return(rendered, nil)
	fx.objectStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", rendered).
		Return(assert.AnError)

	output, err := fx.service.ExportPDF(ctx, account.ID, nil)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", output.ContentType)
	assert.Equal(t, rendered, output.Data)
	assert.Contains(t, output.Filename, ".pdf")
}

func TestExportService_ExportCSV_StatusFilterPassedThrough(t *testing.T) {
	fx := createTestExportService(t)

	ctx := context.Background()
	account := protectedAccount()
	now := time.Now().UTC()

	open := entity.NewAlert("0821234567", nil, nil, now)
	authorized := entity.NewAlert("0821234567", nil, nil, now)
	authorized.Status = entity.StatusAuthorized
	account.Alerts = []entity.Alert{open, authorized}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.exporter.EXPECT().
		RenderCSV([]entity.Alert{authorized}).
		Return([]byte("filtered"), nil)
	fx.objectStore.EXPECT().
		Save(ctx, mock.Anything, "text/csv", mock.Anything).
		Return(nil)

	output, err := fx.service.ExportCSV(ctx, account.ID, &usecase.ListAlertsInput{Status: "Authorized"})

	require.NoError(t, err)
	assert.Equal(t, []byte("filtered"), output.Data)
}
