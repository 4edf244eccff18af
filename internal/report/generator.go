// Package report builds aging summaries over ingested audit records and
// renders them for export.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"fjacquet/ar-aging/internal/logging"
	"fjacquet/ar-aging/internal/models"
)

// StatusSummary aggregates the records of one risk category.
type StatusSummary struct {
	Status       string `json:"status" yaml:"status"`
	RecordCount  int    `json:"recordCount" yaml:"record_count"`
	TotalBalance string `json:"totalBalance" yaml:"total_balance"`
}

// AgingSummary is the batch-level report over one ingestion result.
type AgingSummary struct {
	BatchID      string          `json:"batchId" yaml:"batch_id"`
	GeneratedAt  string          `json:"generatedAt" yaml:"generated_at"`
	RecordCount  int             `json:"recordCount" yaml:"record_count"`
	TotalBalance string          `json:"totalBalance" yaml:"total_balance"`
	Statuses     []StatusSummary `json:"statuses" yaml:"statuses"`
}

// Generator provides functionality to build and render aging summary reports.
type Generator struct {
	logger *logrus.Logger
	now    func() time.Time
}

// NewGenerator creates a new report Generator.
func NewGenerator() *Generator {
	return &Generator{
		logger: logging.GetLogger(),
		now:    time.Now,
	}
}

// WithClock overrides the report timestamp source. Intended for tests.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	if now != nil {
		g.now = now
	}
	return g
}

// Summarize aggregates record counts and balance totals per risk category.
// Categories always appear in severity order, including empty ones, and the
// batch gets a fresh uuid.
func (g *Generator) Summarize(records []models.AuditRecord) *AgingSummary {
	order := []models.Status{models.StatusCurrent, models.StatusOverdue, models.StatusImpaired}

	counts := make(map[models.Status]int, len(order))
	totals := make(map[models.Status]decimal.Decimal, len(order))
	grandTotal := decimal.Zero

	for _, record := range records {
		counts[record.Status]++
		totals[record.Status] = totals[record.Status].Add(record.TotalBalance)
		grandTotal = grandTotal.Add(record.TotalBalance)
	}

	statuses := make([]StatusSummary, 0, len(order))
	for _, status := range order {
		statuses = append(statuses, StatusSummary{
			Status:       status.String(),
			RecordCount:  counts[status],
			TotalBalance: totals[status].StringFixed(2),
		})
	}

	summary := &AgingSummary{
		BatchID:      uuid.NewString(),
		GeneratedAt:  g.now().UTC().Format(time.RFC3339),
		RecordCount:  len(records),
		TotalBalance: grandTotal.StringFixed(2),
		Statuses:     statuses,
	}

	g.logger.WithFields(logrus.Fields{
		"batch_id":          summary.BatchID,
		logging.FieldCount:  summary.RecordCount,
		logging.FieldStatus: "summarized",
	}).Info("Built aging summary")

	return summary
}

// Render renders an aging summary in the specified format (yaml or json).
func (g *Generator) Render(summary *AgingSummary, format string) ([]byte, error) {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(summary)
		if err != nil {
			g.logger.Errorf("Failed to marshal YAML report: %v", err)
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return out, nil
	case "json":
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			g.logger.Errorf("Failed to marshal JSON report: %v", err)
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}
