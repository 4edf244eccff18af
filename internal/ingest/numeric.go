package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonNumericPattern = regexp.MustCompile(`[^0-9.\-]`)
	nonDigitPattern   = regexp.MustCompile(`[^0-9]`)
)

// NormalizeBalance converts a locale-formatted balance string into a decimal
// value. The batch delimiter doubles as the locale hint: semicolon-delimited
// files are assumed to use '.' as thousands separator and ',' as decimal
// separator, comma-delimited files the reverse. After locale conversion,
// everything that is not a digit, '.' or '-' (currency symbols, stray text)
// is stripped before parsing.
//
// Known limitation carried over from the ledger format: a comma-delimited
// file using European decimal commas will be misparsed, since the delimiter
// is the only locale signal available.
func NormalizeBalance(raw string, delim rune) (decimal.Decimal, error) {
	s := raw
	if delim == ';' {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	s = nonNumericPattern.ReplaceAllString(s, "")

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparsable balance '%s': %w", raw, err)
	}
	return value, nil
}

// ParseAgingDays extracts the aging-days count from a raw field value by
// stripping every non-digit character. Aging is best-effort: an absent or
// unparsable value yields 0 instead of discarding the row.
func ParseAgingDays(raw string) int {
	digits := nonDigitPattern.ReplaceAllString(raw, "")
	if digits == "" {
		return 0
	}

	days, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return days
}
