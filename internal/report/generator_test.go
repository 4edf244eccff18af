package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fjacquet/ar-aging/internal/models"
)

func testRecords() []models.AuditRecord {
	return []models.AuditRecord{
		{ID: "AR-1", TotalBalance: decimal.NewFromInt(150000000), AgingDays: 15, Status: models.StatusCurrent},
		{ID: "AR-2", TotalBalance: decimal.NewFromInt(45000000), AgingDays: 45, Status: models.StatusOverdue},
		{ID: "AR-3", TotalBalance: decimal.NewFromInt(12500000), AgingDays: 120, Status: models.StatusImpaired},
		{ID: "AR-4", TotalBalance: decimal.NewFromInt(-1500000), AgingDays: 30, Status: models.StatusCurrent},
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2023, 10, 15, 9, 30, 0, 0, time.UTC)
	}
}

func TestSummarize(t *testing.T) {
	generator := NewGenerator().WithClock(fixedClock())

	summary := generator.Summarize(testRecords())

	assert.NotEmpty(t, summary.BatchID)
	assert.Equal(t, "2023-10-15T09:30:00Z", summary.GeneratedAt)
	assert.Equal(t, 4, summary.RecordCount)
	assert.Equal(t, "206000000.00", summary.TotalBalance)

	require.Len(t, summary.Statuses, 3)
	assert.Equal(t, "Current", summary.Statuses[0].Status)
	assert.Equal(t, 2, summary.Statuses[0].RecordCount)
	assert.Equal(t, "148500000.00", summary.Statuses[0].TotalBalance)

	assert.Equal(t, "Overdue", summary.Statuses[1].Status)
	assert.Equal(t, 1, summary.Statuses[1].RecordCount)

	assert.Equal(t, "Impaired", summary.Statuses[2].Status)
	assert.Equal(t, 1, summary.Statuses[2].RecordCount)
}

func TestSummarize_EmptyCategoriesPresent(t *testing.T) {
	generator := NewGenerator().WithClock(fixedClock())

	summary := generator.Summarize([]models.AuditRecord{
		{ID: "AR-1", TotalBalance: decimal.NewFromInt(100), AgingDays: 5, Status: models.StatusCurrent},
	})

	require.Len(t, summary.Statuses, 3)
	assert.Equal(t, 0, summary.Statuses[1].RecordCount)
	assert.Equal(t, "0.00", summary.Statuses[1].TotalBalance)
	assert.Equal(t, 0, summary.Statuses[2].RecordCount)
}

func TestSummarize_FreshBatchIDs(t *testing.T) {
	generator := NewGenerator()

	first := generator.Summarize(testRecords())
	second := generator.Summarize(testRecords())

	assert.NotEqual(t, first.BatchID, second.BatchID)
}

func TestRender_YAML(t *testing.T) {
	generator := NewGenerator().WithClock(fixedClock())
	summary := generator.Summarize(testRecords())

	out, err := generator.Render(summary, "yaml")
	require.NoError(t, err)

	var decoded AgingSummary
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, summary.RecordCount, decoded.RecordCount)
	assert.Equal(t, summary.TotalBalance, decoded.TotalBalance)
}

func TestRender_JSON(t *testing.T) {
	generator := NewGenerator().WithClock(fixedClock())
	summary := generator.Summarize(testRecords())

	out, err := generator.Render(summary, "json")
	require.NoError(t, err)

	var decoded AgingSummary
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, summary.BatchID, decoded.BatchID)
	assert.Len(t, decoded.Statuses, 3)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	generator := NewGenerator()
	_, err := generator.Render(&AgingSummary{}, "xml")
	assert.Error(t, err)
}
