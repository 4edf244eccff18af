package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/ar-aging/internal/models"
)

func sampleRecords() []models.AuditRecord {
	return []models.AuditRecord{
		{
			ID:           "AR-1",
			CustomerName: "PT. Maju Jaya",
			TotalBalance: decimal.NewFromInt(150000000),
			AgingDays:    15,
			Status:       models.StatusCurrent,
			InvoiceDate:  "2023-10-01",
		},
		{
			ID:           "AR-2",
			CustomerName: "Local Trader",
			TotalBalance: decimal.NewFromInt(-1500000),
			AgingDays:    30,
			Status:       models.StatusCurrent,
			InvoiceDate:  "2023-09-15",
		},
	}
}

func TestWriteRecordsToCSV(t *testing.T) {
	tempDir := t.TempDir()
	csvFile := filepath.Join(tempDir, "out", "records.csv")

	err := WriteRecordsToCSV(sampleRecords(), csvFile)
	require.NoError(t, err)

	content, err := os.ReadFile(csvFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,CustomerName,TotalBalance,AgingDays,Status,InvoiceDate", lines[0])
	assert.Contains(t, lines[1], "AR-1")
	assert.Contains(t, lines[1], "Current")
	assert.Contains(t, lines[2], "-1500000")
}

func TestWriteRecordsToCSV_NilRecords(t *testing.T) {
	err := WriteRecordsToCSV(nil, filepath.Join(t.TempDir(), "records.csv"))
	assert.Error(t, err)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	csvFile := filepath.Join(tempDir, "records.csv")

	records := sampleRecords()
	require.NoError(t, WriteRecordsToCSV(records, csvFile))

	got, err := ReadCSVFile[models.AuditRecord](csvFile)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, records[0].ID, got[0].ID)
	assert.Equal(t, records[0].CustomerName, got[0].CustomerName)
	assert.True(t, records[0].TotalBalance.Equal(got[0].TotalBalance))
	assert.Equal(t, records[1].Status, got[1].Status)
}

func TestReadCSVFile_MissingFile(t *testing.T) {
	_, err := ReadCSVFile[models.AuditRecord](filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
