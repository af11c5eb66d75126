package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"simsure/internal/delivery/http/response"
	"simsure/internal/domain/entity"
	"simsure/internal/usecase"
)

// AlertHandler holds dependencies for alert lifecycle handlers.
type AlertHandler struct {
	uc     usecase.AlertUsecase
	logger *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler, injected by Fx.
func NewAlertHandler(uc usecase.AlertUsecase, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{
		uc:     uc,
		logger: logger,
	}
}

func alertIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("alertID"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse alert ID")
	}

	return id, nil
}

// Trigger creates a new alert for one of the account's linked SIMs.
func (h *AlertHandler) Trigger(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.TriggerAlertInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	alert, err := h.uc.TriggerAlert(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, alert, "Alert triggered")
}

// List returns the account's alerts, optionally filtered by status.
func (h *AlertHandler) List(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	input := &usecase.ListAlertsInput{Status: c.QueryParam("status")}
	alerts, err := h.uc.ListAlerts(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alerts, "Alerts retrieved successfully")
}

// Challenge issues an authorization challenge for an alert.
func (h *AlertHandler) Challenge(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}
	alertID, err := alertIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alert ID")
	}

	output, err := h.uc.IssueChallenge(c.Request().Context(), accountID, alertID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Challenge issued")
}

// Authorize marks an alert as Authorized.
func (h *AlertHandler) Authorize(c echo.Context) error {
	return h.decide(c, h.uc.AuthorizeAlert, "Alert authorized")
}

// Deny marks an alert as Not Authorized.
func (h *AlertHandler) Deny(c echo.Context) error {
	return h.decide(c, h.uc.DenyAlert, "Alert denied")
}

// Resolve marks an alert as resolved.
func (h *AlertHandler) Resolve(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}
	alertID, err := alertIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alert ID")
	}

	alert, err := h.uc.ResolveAlert(c.Request().Context(), accountID, alertID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alert, "Alert resolved")
}

type decisionFunc func(ctx context.Context, accountID, alertID uuid.UUID, input *usecase.DecisionInput) (*entity.Alert, error)

func (h *AlertHandler) decide(c echo.Context, decision decisionFunc, message string) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}
	alertID, err := alertIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alert ID")
	}

	var input *usecase.DecisionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	alert, err := decision(c.Request().Context(), accountID, alertID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alert, message)
}
