package ingest

import "strings"

// DetectDelimiter inspects the header line and chooses the field separator
// for the whole batch. Semicolon wins only when it strictly outnumbers the
// commas; comma is the tie-break default. The choice doubles as the numeric
// locale hint for balance parsing, see NormalizeBalance.
func DetectDelimiter(header string) rune {
	if strings.Count(header, ";") > strings.Count(header, ",") {
		return ';'
	}
	return ','
}
