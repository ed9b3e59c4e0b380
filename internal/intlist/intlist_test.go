package intlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{
			name:     "canonical form",
			input:    "1, 2, 3, 4, 5",
			expected: []int{1, 2, 3, 4, 5},
		},
		{
			name:     "no spaces",
			input:    "3,1,2",
			expected: []int{3, 1, 2},
		},
		{
			name:     "ragged spacing",
			input:    "  9 ,8,  7",
			expected: []int{9, 8, 7},
		},
		{
			name:     "negative values",
			input:    "-5, 3, -1",
			expected: []int{-5, 3, -1},
		},
		{
			name:     "explicit plus sign",
			input:    "+7, 2",
			expected: []int{7, 2},
		},
		{
			name:     "single element",
			input:    "42",
			expected: []int{42},
		},
		{
			name:     "duplicates",
			input:    "2, 2, 2",
			expected: []int{2, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string // raw token, spaces and all
	}{
		{
			name:  "word token",
			input: "1, two, 3",
			token: " two",
		},
		{
			name:  "float token",
			input: "1, 2.5",
			token: " 2.5",
		},
		{
			name:  "empty input",
			input: "",
			token: "",
		},
		{
			name:  "empty token between commas",
			input: "1,,2",
			token: "",
		},
		{
			name:  "trailing comma",
			input: "1, 2,",
			token: "",
		},
		{
			name:  "tab is not stripped",
			input: "1,\t2",
			token: "\t2",
		},
		{
			name:  "internal space",
			input: "1 2, 3",
			token: "1 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.token, perr.Token)
		})
	}
}

func TestRender(t *testing.T) {
	assert.Equal(t, "1, 2, 3", Render([]int{1, 2, 3}))
	assert.Equal(t, "-4", Render([]int{-4}))
	assert.Equal(t, "", Render(nil))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		xs       []int
		expected string
	}{
		{
			name:     "typical list",
			xs:       []int{1, 2, 3, 4, 5},
			expected: "[1, 2, 3, 4, 5]",
		},
		{
			name:     "negatives and zero",
			xs:       []int{-3, -1, 0},
			expected: "[-3, -1, 0]",
		},
		{
			name:     "single element",
			xs:       []int{7},
			expected: "[7]",
		},
		{
			name:     "empty",
			xs:       nil,
			expected: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.xs))
		})
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	sequences := [][]int{
		{1},
		{5, 4, 3, 2, 1},
		{-10, 0, 10},
		{7, 7, 7},
	}

	for _, xs := range sequences {
		got, err := Parse(Render(xs))
		require.NoError(t, err)
		assert.Equal(t, xs, got)
	}
}
