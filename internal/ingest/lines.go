// Package ingest implements the aging-ledger ingestion pipeline: it turns a
// raw delimited-text blob into an ordered batch of risk-classified audit
// records, discarding malformed rows and failing only on batch-level
// conditions.
package ingest

import (
	"strings"

	"fjacquet/ar-aging/internal/ingesterror"
)

// SplitLines normalizes all line-ending variants (CRLF, lone CR) to LF and
// splits the blob into an ordered sequence of lines. Leading and trailing
// whitespace around the whole blob is dropped first, so a header with no data
// rows counts as a single line.
func SplitLines(text string) ([]string, error) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	lines := strings.Split(strings.TrimSpace(normalized), "\n")

	if len(lines) < 2 {
		return nil, &ingesterror.EmptyInputError{Lines: len(lines)}
	}
	return lines, nil
}
