package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   rune
	}{
		{"comma header", "Customer Name,Total Balance,Aging Days,Invoice Date", ','},
		{"semicolon header", "Customer Name;Total Balance;Aging Days;Invoice Date", ';'},
		{"tie defaults to comma", "Name,Balance;Other", ','},
		{"equal counts default to comma", "a,b;c,d;e", ','},
		{"semicolon strictly wins", "a;b;c,d", ';'},
		{"no separators default to comma", "CustomerName", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDelimiter(tt.header))
		})
	}
}
