package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simsure/internal/domain/entity"
)

func TestAlertExporter_RenderCSV_Empty(t *testing.T) {
	exporter := NewAlertExporter()

	data, err := exporter.RenderCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "SIM,Time,Status,Authorized By,Authorization Time\n", string(data))
}

func TestAlertExporter_RenderCSV_Rows(t *testing.T) {
	exporter := NewAlertExporter()

	created := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	decidedAt := created.Add(time.Hour)

	authorized := entity.NewAlert("0821234567", nil, nil, created)
	require.NoError(t, authorized.Authorize("Admin", decidedAt))
	open := entity.NewAlert("0837654321", nil, nil, created)

	data, err := exporter.RenderCSV([]entity.Alert{authorized, open})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"SIM", "Time", "Status", "Authorized By", "Authorization Time"}, records[0])
	assert.Equal(t, []string{"0821234567", "2026-08-01 10:30:00", "Authorized", "Admin", "2026-08-01 11:30:00"}, records[1])
	assert.Equal(t, []string{"0837654321", "2026-08-01 10:30:00", "new", "", ""}, records[2])
}

func TestAlertExporter_RenderCSV_QuotesEmbeddedCommas(t *testing.T) {
	exporter := NewAlertExporter()

	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	require.NoError(t, alert.Authorize(`Mokoena, Thandi`, time.Now().UTC()))

	data, err := exporter.RenderCSV([]entity.Alert{alert})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Mokoena, Thandi", records[1][3])
}

func TestAlertExporter_RenderPDF(t *testing.T) {
	exporter := NewAlertExporter()

	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	data, err := exporter.RenderPDF([]entity.Alert{alert})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-1.4")))
	assert.Contains(t, string(data), "0821234567")
	assert.Contains(t, string(data), "%%EOF")
}

func TestEscapePDFText(t *testing.T) {
	assert.Equal(t, `a\(b\)c\\d`, escapePDFText(`a(b)c\d`))
}
