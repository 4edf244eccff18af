package ingest

import "fjacquet/ar-aging/internal/models"

// Aging band boundaries in days, inclusive on the lower side of each band.
const (
	CurrentMaxDays = 30
	OverdueMaxDays = 90
)

// Classify maps aging days to a risk category. Exactly 30 days is still
// Current and exactly 90 days is still Overdue.
func Classify(agingDays int) models.Status {
	switch {
	case agingDays <= CurrentMaxDays:
		return models.StatusCurrent
	case agingDays <= OverdueMaxDays:
		return models.StatusOverdue
	default:
		return models.StatusImpaired
	}
}
