// Package qrcode implements enrollment QR code generation and parsing.
package qrcode

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"simsure/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	AccountID string `json:"account_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateEnrollmentQR generates a QR code PNG binding a device to an account.
func (s *qrcodeService) GenerateEnrollmentQR(accountID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		AccountID: accountID.String(),
		Type:      "enrollment",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseEnrollmentQR parses QR code data and returns the account ID.
func (s *qrcodeService) ParseEnrollmentQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "enrollment" {
		return uuid.Nil, fmt.Errorf("unexpected QR code type: %s", data.Type)
	}

	accountID, err := uuid.Parse(data.AccountID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid account ID in QR code: %w", err)
	}

	return accountID, nil
}
