package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/ar-aging/internal/ingesterror"
	"fjacquet/ar-aging/internal/logging"
	"fjacquet/ar-aging/internal/models"
)

const commaLedger = `Customer Name,Total Balance,Aging Days,Invoice Date
PT. Maju Jaya,150000000,15,2023-10-01
CV. Sumber Rejeki,45000000,45,2023-09-01
Toko Abadi,12500000,120,2023-06-01
Local Trader,-1500000,30,2023-09-15`

func newTestPipeline() *Pipeline {
	return NewPipeline(logging.NewMockLogger())
}

func TestIngest_CommaLedger(t *testing.T) {
	pipeline := newTestPipeline()

	records, err := pipeline.Ingest(commaLedger)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "AR-1", records[0].ID)
	assert.Equal(t, "PT. Maju Jaya", records[0].CustomerName)
	assert.True(t, records[0].TotalBalance.Equal(decimal.NewFromInt(150000000)))
	assert.Equal(t, 15, records[0].AgingDays)
	assert.Equal(t, models.StatusCurrent, records[0].Status)
	assert.Equal(t, "2023-10-01", records[0].InvoiceDate)

	assert.Equal(t, models.StatusOverdue, records[1].Status)
	assert.Equal(t, models.StatusImpaired, records[2].Status)

	// Negative balances are credits, 30 days is still Current
	assert.True(t, records[3].TotalBalance.Equal(decimal.NewFromInt(-1500000)))
	assert.Equal(t, 30, records[3].AgingDays)
	assert.Equal(t, models.StatusCurrent, records[3].Status)
}

func TestIngest_SemicolonLedger(t *testing.T) {
	input := "Customer Name;Total Balance;Aging Days;Invoice Date\n" +
		"PT. Maju Jaya;1.000.000,50;45;2023-09-01\n" +
		"CV. Sumber Rejeki;Rp 2.500.000,00;91;2023-06-01"

	pipeline := newTestPipeline()

	records, err := pipeline.Ingest(input)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].TotalBalance.Equal(decimal.RequireFromString("1000000.50")))
	assert.Equal(t, models.StatusOverdue, records[0].Status)
	assert.True(t, records[1].TotalBalance.Equal(decimal.NewFromInt(2500000)))
	assert.Equal(t, models.StatusImpaired, records[1].Status)
}

func TestIngest_SkipsMalformedRows(t *testing.T) {
	input := "Customer Name,Total Balance,Aging Days,Invoice Date\n" +
		"PT. Maju Jaya,150000000,15,2023-10-01\n" +
		"OnlyOneColumn\n" +
		"\n" +
		"Bad Balance,not-a-number,10,2023-09-01\n" +
		"CV. Sumber Rejeki,45000000,45,2023-09-01"

	pipeline := newTestPipeline()

	records, err := pipeline.Ingest(input)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Surviving rows keep their order and positional ids
	assert.Equal(t, "PT. Maju Jaya", records[0].CustomerName)
	assert.Equal(t, "AR-1", records[0].ID)
	assert.Equal(t, "CV. Sumber Rejeki", records[1].CustomerName)
	assert.Equal(t, "AR-5", records[1].ID)
}

func TestIngest_AgingIsBestEffort(t *testing.T) {
	input := "Customer Name,Total Balance,Aging Days,Invoice Date\n" +
		"PT. Maju Jaya,1000,garbage,2023-10-01\n" +
		"CV. Sumber Rejeki,2000"

	pipeline := newTestPipeline()

	records, err := pipeline.Ingest(input)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Unparsable aging is coerced to 0 instead of dropping the row
	assert.Equal(t, 0, records[0].AgingDays)
	assert.Equal(t, models.StatusCurrent, records[0].Status)

	// Missing optional columns also default
	assert.Equal(t, 0, records[1].AgingDays)
	assert.NotEmpty(t, records[1].InvoiceDate)
}

func TestIngest_QuotedFields(t *testing.T) {
	input := "Customer Name,Total Balance,Aging Days,Invoice Date\n" +
		`"PT. Maju Jaya","150000000","15","2023-10-01"`

	pipeline := newTestPipeline()

	records, err := pipeline.Ingest(input)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "PT. Maju Jaya", records[0].CustomerName)
	assert.True(t, records[0].TotalBalance.Equal(decimal.NewFromInt(150000000)))
}

func TestIngest_EmptyInput(t *testing.T) {
	pipeline := newTestPipeline()

	tests := []struct {
		name  string
		input string
	}{
		{"empty blob", ""},
		{"header only", "Customer Name,Total Balance,Aging Days,Invoice Date"},
		{"header with trailing newline", "Customer Name,Total Balance\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pipeline.Ingest(tt.input)
			require.Error(t, err)

			var emptyErr *ingesterror.EmptyInputError
			assert.ErrorAs(t, err, &emptyErr)
		})
	}
}

func TestIngest_NoValidRecords(t *testing.T) {
	input := "Customer Name,Total Balance,Aging Days,Invoice Date\n" +
		"Bad Row,not-a-number,10,2023-09-01\n" +
		"Another Bad Row,---,20,2023-09-02\n" +
		"UnderColumned"

	pipeline := newTestPipeline()

	_, err := pipeline.Ingest(input)
	require.Error(t, err)

	var noValidErr *ingesterror.NoValidRecordsError
	require.ErrorAs(t, err, &noValidErr)
	assert.Equal(t, 3, noValidErr.RowsSeen)
}

func TestIngest_IDsUniqueAndOrdered(t *testing.T) {
	pipeline := newTestPipeline()

	records, err := pipeline.Ingest(commaLedger)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i, record := range records {
		assert.False(t, seen[record.ID], "duplicate id %s", record.ID)
		seen[record.ID] = true
		if i > 0 {
			assert.Less(t, records[i-1].ID, record.ID)
		}
	}
}

func TestIngest_IndependentCalls(t *testing.T) {
	pipeline := newTestPipeline()

	first, err := pipeline.Ingest(commaLedger)
	require.NoError(t, err)
	second, err := pipeline.Ingest(commaLedger)
	require.NoError(t, err)

	assert.Equal(t, first, second, "ingestion must be side-effect free across calls")
}
