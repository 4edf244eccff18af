package ingest

import "strings"

// Fixed column positions of a ledger row.
const (
	colName    = 0
	colBalance = 1
	colAging   = 2
	colDate    = 3
)

// TokenizeRow splits one data line into trimmed, unquoted field values.
// Returns nil for a blank line (empty after trimming). A single layer of
// surrounding double quotes is stripped when present at both ends; escaped
// quotes and delimiters inside quotes are not supported.
func TokenizeRow(line string, delim rune) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	parts := strings.Split(line, string(delim))
	fields := make([]string, len(parts))
	for i, part := range parts {
		fields[i] = unquote(strings.TrimSpace(part))
	}
	return fields
}

// unquote strips one layer of surrounding double quotes.
func unquote(field string) string {
	if len(field) >= 2 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		return field[1 : len(field)-1]
	}
	return field
}
