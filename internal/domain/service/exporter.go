package service

import "simsure/internal/domain/entity"

// AlertExporter renders an alert list as a downloadable document. Both
// renderings are pure projections; there is no import counterpart.
type AlertExporter interface {
	// RenderCSV renders the alerts as RFC 4180 CSV with the header
	// "SIM,Time,Status,Authorized By,Authorization Time". An empty list
	// yields only the header row.
	RenderCSV(alerts []entity.Alert) ([]byte, error)

	// RenderPDF renders the alerts as a minimal PDF, one text line per alert.
	RenderPDF(alerts []entity.Alert) ([]byte, error)
}
