package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses verification enrollment QR codes.
// The consumer app scans the code to bind a device to an account before
// face enrollment.
type QRCodeService interface {
	// GenerateEnrollmentQR generates a QR code PNG for account enrollment.
	GenerateEnrollmentQR(accountID uuid.UUID) ([]byte, error)

	// ParseEnrollmentQR parses QR code data and returns the account ID.
	ParseEnrollmentQR(qrData string) (uuid.UUID, error)
}
