// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// AuditRecord represents one risk-classified receivable from an aging ledger.
// Records are built once during an ingestion pass and are not mutated after
// construction; Status is always derived from AgingDays, never set directly.
type AuditRecord struct {
	ID           string          `csv:"ID" json:"id" yaml:"id"`                               // Positional identifier, unique within a batch
	CustomerName string          `csv:"CustomerName" json:"customerName" yaml:"customer_name"` // Customer name, "Unknown" when the source field is empty
	TotalBalance decimal.Decimal `csv:"TotalBalance" json:"totalBalance" yaml:"total_balance"` // Outstanding balance, negative values are credits
	AgingDays    int             `csv:"AgingDays" json:"agingDays" yaml:"aging_days"`          // Days outstanding past due, never negative
	Status       Status          `csv:"Status" json:"status" yaml:"status"`                    // Risk category derived from AgingDays
	InvoiceDate  string          `csv:"InvoiceDate" json:"invoiceDate" yaml:"invoice_date"`    // ISO date, defaults to the processing date
}

// IsCredit reports whether the record carries a negative balance.
func (r *AuditRecord) IsCredit() bool {
	return r.TotalBalance.IsNegative()
}

// BalanceFixed returns the balance formatted with two decimal places.
func (r *AuditRecord) BalanceFixed() string {
	return r.TotalBalance.StringFixed(2)
}
