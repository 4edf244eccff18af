package models

// Status is the payment-aging risk category of an audit record.
type Status string

// Risk categories, ordered by severity.
const (
	StatusCurrent  Status = "Current"  // 30 days or fewer outstanding
	StatusOverdue  Status = "Overdue"  // between 31 and 90 days outstanding
	StatusImpaired Status = "Impaired" // more than 90 days outstanding
)

// String returns the status as a plain string.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known risk categories.
func (s Status) IsValid() bool {
	switch s {
	case StatusCurrent, StatusOverdue, StatusImpaired:
		return true
	}
	return false
}
