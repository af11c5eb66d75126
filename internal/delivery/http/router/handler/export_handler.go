package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"simsure/internal/delivery/http/response"
	"simsure/internal/usecase"
)

// ExportHandler serves alert history downloads.
type ExportHandler struct {
	uc     usecase.ExportUsecase
	logger *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler, injected by Fx.
func NewExportHandler(uc usecase.ExportUsecase, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		uc:     uc,
		logger: logger,
	}
}

// CSV renders the filtered alert list as a CSV download.
func (h *ExportHandler) CSV(c echo.Context) error {
	return h.export(c, h.uc.ExportCSV)
}

// PDF renders the filtered alert list as a PDF download.
func (h *ExportHandler) PDF(c echo.Context) error {
	return h.export(c, h.uc.ExportPDF)
}

type exportFunc func(ctx context.Context, accountID uuid.UUID, input *usecase.ListAlertsInput) (*usecase.ExportOutput, error)

func (h *ExportHandler) export(c echo.Context, render exportFunc) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	input := &usecase.ListAlertsInput{Status: c.QueryParam("status")}
	output, err := render(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, output.Filename))

	return c.Blob(http.StatusOK, output.ContentType, output.Data)
}
