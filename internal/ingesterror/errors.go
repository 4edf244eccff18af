// Package ingesterror defines the typed errors surfaced by the ingestion
// pipeline. Only batch-level conditions are exported; row-level failures are
// absorbed inside the pipeline and never reach callers individually.
package ingesterror

import "fmt"

// EmptyInputError reports input with fewer than two lines: either no header
// at all, or a header with no data rows.
type EmptyInputError struct {
	Lines int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input: need a header line and at least one data row, got %d line(s)", e.Lines)
}

// NoValidRecordsError reports a batch where every data row was discarded
// during row-level filtering.
type NoValidRecordsError struct {
	RowsSeen int
}

func (e *NoValidRecordsError) Error() string {
	return fmt.Sprintf("no valid records: all %d data row(s) were discarded", e.RowsSeen)
}

// RowError describes why a single data row was discarded. It is logged and
// swallowed by the pipeline, never returned to callers.
type RowError struct {
	Line   int
	Field  string
	Value  string
	Reason string
}

func (e *RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: failed on %s='%s': %s", e.Line, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}
