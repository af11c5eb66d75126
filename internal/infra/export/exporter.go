// Package export renders alert history as downloadable CSV and PDF
// artifacts.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/pkg/errors"

	"simsure/internal/domain/entity"
	"simsure/internal/domain/service"
)

const timestampLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"SIM", "Time", "Status", "Authorized By", "Authorization Time"}

type alertExporter struct{}

// NewAlertExporter creates the CSV/PDF alert exporter.
func NewAlertExporter() service.AlertExporter {
	return &alertExporter{}
}

// RenderCSV renders the alerts as RFC 4180 CSV. An empty alert list yields
// only the header row.
func (e *alertExporter) RenderCSV(alerts []entity.Alert) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, errors.Wrap(err, "write csv header")
	}
	for i := range alerts {
		if err := w.Write(csvRow(&alerts[i])); err != nil {
			return nil, errors.Wrap(err, "write csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "flush csv")
	}

	return buf.Bytes(), nil
}

// RenderPDF renders the alerts as a single-page PDF, one text line per alert.
func (e *alertExporter) RenderPDF(alerts []entity.Alert) ([]byte, error) {
	lines := make([]string, 0, len(alerts)+1)
	lines = append(lines, "SIM Alert History")
	for i := range alerts {
		al := &alerts[i]
		line := al.SIMNumber + "  " + al.CreatedAt.Format(timestampLayout) + "  " + string(al.Status)
		if al.AuthorizedBy != "" {
			line += "  by " + al.AuthorizedBy
		}
		if al.AuthorizedAt != nil {
			line += " at " + al.AuthorizedAt.Format(timestampLayout)
		}
		lines = append(lines, line)
	}

	return renderPDF(lines)
}

func csvRow(al *entity.Alert) []string {
	authorizedAt := ""
	if al.AuthorizedAt != nil {
		authorizedAt = al.AuthorizedAt.UTC().Format(timestampLayout)
	}

	return []string{
		al.SIMNumber,
		al.CreatedAt.UTC().Format(timestampLayout),
		string(al.Status),
		al.AuthorizedBy,
		authorizedAt,
	}
}
