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
	"simsure/internal/domain/service"
	"simsure/internal/usecase"
)

// exportService implements the ExportUsecase interface.
type exportService struct {
	alertUsecase usecase.AlertUsecase
	exporter     service.AlertExporter
	objectStore  service.ObjectStore
	logger       *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(
	alertUsecase usecase.AlertUsecase,
	exporter service.AlertExporter,
	objectStore service.ObjectStore,
	logger *slog.Logger,
) usecase.ExportUsecase {
	return &exportService{
		alertUsecase: alertUsecase,
		exporter:     exporter,
		objectStore:  objectStore,
		logger:       logger,
	}
}

// ExportCSV renders the account's filtered alerts as CSV.
func (srv *exportService) ExportCSV(ctx context.Context, accountID uuid.UUID, input *usecase.ListAlertsInput) (*usecase.ExportOutput, error) {
	return srv.export(ctx, accountID, input, "csv", "text/csv", srv.exporter.RenderCSV)
}

// ExportPDF renders the account's filtered alerts as PDF.
func (srv *exportService) ExportPDF(ctx context.Context, accountID uuid.UUID, input *usecase.ListAlertsInput) (*usecase.ExportOutput, error) {
	return srv.export(ctx, accountID, input, "pdf", "application/pdf", srv.exporter.RenderPDF)
}

func (srv *exportService) export(
	ctx context.Context,
	accountID uuid.UUID,
	input *usecase.ListAlertsInput,
	ext, contentType string,
	render func([]entity.Alert) ([]byte, error),
) (*usecase.ExportOutput, error) {
	alerts, err := srv.alertUsecase.ListAlerts(ctx, accountID, input)
	if err != nil {
		return nil, err
	}

	data, err := render(alerts)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "render export")
	}

	filename := fmt.Sprintf("alerts-%s.%s", time.Now().UTC().Format("20060102-150405"), ext)

	// The archive copy is best effort; the download itself must not fail
	// because the bucket is unreachable.
	key := fmt.Sprintf("exports/%s/%s", accountID, filename)
	if err := srv.objectStore.Save(ctx, key, contentType, data); err != nil {
		srv.logger.Warn("Failed to archive export",
			slog.String("accountID", accountID.String()),
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	return &usecase.ExportOutput{
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
