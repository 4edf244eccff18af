package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/ar-aging/internal/dateutils"
	"fjacquet/ar-aging/internal/models"
)

// Defaults used by NewRecordBuilder.
const (
	DefaultIDPrefix    = "AR-"
	DefaultUnknownName = "Unknown"
)

// RecordBuilder assembles validated row fields into audit records. The id is
// the configured prefix plus the row's 1-based positional index, which keeps
// ids unique and order-preserving even when customer names repeat.
type RecordBuilder struct {
	idPrefix    string
	unknownName string
	now         func() time.Time
}

// NewRecordBuilder creates a RecordBuilder with the given id prefix and
// placeholder name. Empty arguments fall back to the package defaults.
func NewRecordBuilder(idPrefix, unknownName string) *RecordBuilder {
	if idPrefix == "" {
		idPrefix = DefaultIDPrefix
	}
	if unknownName == "" {
		unknownName = DefaultUnknownName
	}
	return &RecordBuilder{
		idPrefix:    idPrefix,
		unknownName: unknownName,
		now:         time.Now,
	}
}

// WithClock overrides the time source used for invoice-date defaults.
// Intended for tests.
func (b *RecordBuilder) WithClock(now func() time.Time) *RecordBuilder {
	if now != nil {
		b.now = now
	}
	return b
}

// Build constructs one AuditRecord from normalized fields. The status is
// derived from agingDays here and nowhere else.
func (b *RecordBuilder) Build(index int, name string, balance decimal.Decimal, agingDays int, invoiceDate string) models.AuditRecord {
	return models.AuditRecord{
		ID:           b.idPrefix + strconv.Itoa(index),
		CustomerName: b.customerName(name),
		TotalBalance: balance,
		AgingDays:    agingDays,
		Status:       Classify(agingDays),
		InvoiceDate:  b.invoiceDate(invoiceDate),
	}
}

func (b *RecordBuilder) customerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return b.unknownName
	}
	return name
}

// invoiceDate normalizes a parseable date to ISO form, passes a non-empty
// unparseable value through untouched, and defaults to the current
// processing date when the field is absent.
func (b *RecordBuilder) invoiceDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return dateutils.ToISODate(b.now())
	}
	if t, err := dateutils.ParseDateString(raw); err == nil {
		return dateutils.ToISODate(t)
	}
	return raw
}
