package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ExportUsecase renders an account's filtered alert list as a downloadable
// artifact and archives a copy in the export bucket.
type ExportUsecase interface {
	ExportCSV(ctx context.Context, accountID uuid.UUID, input *ListAlertsInput) (*ExportOutput, error)
	ExportPDF(ctx context.Context, accountID uuid.UUID, input *ListAlertsInput) (*ExportOutput, error)
}

// ExportOutput carries a rendered export artifact.
type ExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}
