package ingesterror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyInputError(t *testing.T) {
	err := &EmptyInputError{Lines: 1}
	assert.Contains(t, err.Error(), "empty input")
	assert.Contains(t, err.Error(), "1 line(s)")
}

func TestNoValidRecordsError(t *testing.T) {
	err := &NoValidRecordsError{RowsSeen: 3}
	assert.Contains(t, err.Error(), "no valid records")
	assert.Contains(t, err.Error(), "3 data row(s)")
}

func TestRowError(t *testing.T) {
	withField := &RowError{Line: 4, Field: "balance", Value: "abc", Reason: "not numeric"}
	assert.Equal(t, "row 4: failed on balance='abc': not numeric", withField.Error())

	withoutField := &RowError{Line: 2, Reason: "under-columned"}
	assert.Equal(t, "row 2: under-columned", withoutField.Error())
}
