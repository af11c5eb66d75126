package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"simsure/internal/delivery/http/response"
	"simsure/internal/usecase"
)

// DealerHandler covers the distributor back-office endpoints.
type DealerHandler struct {
	uc     usecase.DealerUsecase
	logger *slog.Logger
}

// NewDealerHandler is the constructor for DealerHandler, injected by Fx.
func NewDealerHandler(uc usecase.DealerUsecase, logger *slog.Logger) *DealerHandler {
	return &DealerHandler{
		uc:     uc,
		logger: logger,
	}
}

func dealerIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse dealer ID")
	}

	return id, nil
}

// RecordSale captures one SIM sale.
func (h *DealerHandler) RecordSale(c echo.Context) error {
	dealerID, err := dealerIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dealer ID")
	}

	var input *usecase.RecordSaleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sale, err := h.uc.RecordSale(c.Request().Context(), dealerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sale, "Sale recorded")
}

// ListSales returns a dealer's captured sales, newest first.
func (h *DealerHandler) ListSales(c echo.Context) error {
	dealerID, err := dealerIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dealer ID")
	}

	sales, err := h.uc.ListSales(c.Request().Context(), dealerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sales, "Sales retrieved successfully")
}

// RecordEwaste captures one e-waste hand-in.
func (h *DealerHandler) RecordEwaste(c echo.Context) error {
	dealerID, err := dealerIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dealer ID")
	}

	var input *usecase.RecordEwasteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid e-waste input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	log, err := h.uc.RecordEwaste(c.Request().Context(), dealerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, log, "E-waste logged")
}

// ListEwaste returns a dealer's e-waste logs, newest first.
func (h *DealerHandler) ListEwaste(c echo.Context) error {
	dealerID, err := dealerIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dealer ID")
	}

	logs, err := h.uc.ListEwasteLogs(c.Request().Context(), dealerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "E-waste logs retrieved successfully")
}

// ScanFraud runs the fraud policy over the dealer's sales history.
func (h *DealerHandler) ScanFraud(c echo.Context) error {
	dealerID, err := dealerIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dealer ID")
	}

	output, err := h.uc.ScanFraud(c.Request().Context(), dealerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Fraud scan complete")
}

// ListFraudCases returns a dealer's fraud cases, newest first.
func (h *DealerHandler) ListFraudCases(c echo.Context) error {
	dealerID, err := dealerIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dealer ID")
	}

	cases, err := h.uc.ListFraudCases(c.Request().Context(), dealerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cases, "Fraud cases retrieved successfully")
}
