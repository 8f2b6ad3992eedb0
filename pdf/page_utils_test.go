package pdf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageSpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []int
	}{
		{name: "single numbers sorted unique", spec: "3,1,2,2", want: []int{1, 2, 3}},
		{name: "ranges and numbers combined", spec: "1-3,5,7-9", want: []int{1, 2, 3, 5, 7, 8, 9}},
		{name: "whitespace and empty pieces ignored", spec: " 1-2 , , 4 , 4 ", want: []int{1, 2, 4}},
		{name: "overlapping range and single collapse", spec: "2-4,3", want: []int{2, 3, 4}},
		{name: "single page", spec: "7", want: []int{7}},
		{name: "degenerate range", spec: "5-5", want: []int{5}},
		{name: "empty spec", spec: "", want: []int{}},
		{name: "commas only", spec: " , , ", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageSpec(tt.spec, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePageSpecRejectsInvalidInput(t *testing.T) {
	specs := []string{
		"0",
		"-1",
		"1-0",
		"0-2",
		"3-2",
		"a",
		"1-a",
		"1--2",
		"1-2-3",
		"1..3",
		"1;2",
	}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			_, err := ParsePageSpec(spec, 0)
			require.Error(t, err)
		})
	}
}

func TestParsePageSpecErrorNamesOffendingPiece(t *testing.T) {
	_, err := ParsePageSpec("1,xyz,3", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xyz")

	_, err = ParsePageSpec("3-2", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3-2")
}

func TestParsePageSpecChecksTotalPages(t *testing.T) {
	_, err := ParsePageSpec("1,2,10", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10")

	// All offenders are listed, not just the first
	_, err = ParsePageSpec("1,8,10", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "8")
	assert.Contains(t, err.Error(), "10")

	got, err := ParsePageSpec("1,2,5", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5}, got)
}

// Parsing the comma-joined result of a prior parse reproduces the same list.
func TestParsePageSpecIdempotent(t *testing.T) {
	first, err := ParsePageSpec("7-9,1-3,5,2", 0)
	require.NoError(t, err)

	parts := make([]string, len(first))
	for i, p := range first {
		parts[i] = fmt.Sprintf("%d", p)
	}
	second, err := ParsePageSpec(strings.Join(parts, ","), 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidatePageNumbers(t *testing.T) {
	assert.NoError(t, ValidatePageNumbers([]int{1, 2, 3}, 3))
	assert.NoError(t, ValidatePageNumbers(nil, 3))
	assert.Error(t, ValidatePageNumbers([]int{4}, 3))
	assert.Error(t, ValidatePageNumbers([]int{0}, 3))
}
