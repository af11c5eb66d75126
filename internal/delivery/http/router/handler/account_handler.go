// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"simsure/internal/delivery/http/response"
	"simsure/internal/usecase"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// accountIDParam parses the :id path parameter.
func accountIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse account ID")
	}

	return id, nil
}

// Register handles the registration wizard submission.
func (h *AccountHandler) Register(c echo.Context) error {
	var input *usecase.RegisterAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterAccount(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Account, "Account registered successfully")
}

// Get returns the full account document.
func (h *AccountHandler) Get(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Account retrieved successfully")
}

// UpsertProtection creates or replaces the SIM protection profile.
func (h *AccountHandler) UpsertProtection(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.ProtectionProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid protection profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpsertProtectionProfile(c.Request().Context(), accountID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Protection profile saved")
}

// ChangeLanguage updates the preferred language.
func (h *AccountHandler) ChangeLanguage(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.ChangeLanguageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid language input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangeLanguage(c.Request().Context(), accountID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Language updated")
}

// Summary returns the dashboard summary (security score, coverage, counts).
func (h *AccountHandler) Summary(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	summary, err := h.uc.GetSummary(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Summary retrieved successfully")
}

// Events streams account snapshots over SSE until the client disconnects.
func (h *AccountHandler) Events(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	ctx := c.Request().Context()
	snapshots, err := h.uc.WatchAccount(ctx, accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case account, ok := <-snapshots:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(account)
			if err != nil {
				h.logger.Error("marshal account snapshot",
					slog.String("account_id", accountID.String()),
					slog.Any("error", err))

				continue
			}

			fmt.Fprintf(resp, "data: %s\n\n", payload)
			resp.Flush()
		}
	}
}

// EnrollmentQR returns the enrollment QR code as a PNG.
func (h *AccountHandler) EnrollmentQR(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	png, err := h.uc.EnrollmentQR(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// FaceCapture stores an uploaded face capture and marks the account enrolled.
func (h *AccountHandler) FaceCapture(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	fileHeader, err := c.FormFile("capture")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Capture file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open capture upload")
	}
	defer file.Close()

	input := &usecase.FaceCaptureInput{
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        file,
	}
	if err := h.uc.StoreFaceCapture(c.Request().Context(), accountID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Face capture stored")
}
