package wordlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/pwkit/pkg/wordlist"
)

func TestSplitSeeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "comma separated",
			input:    "alice,rex,1999",
			expected: []string{"alice", "rex", "1999"},
		},
		{
			name:     "whitespace separated",
			input:    "alice rex\t1999",
			expected: []string{"alice", "rex", "1999"},
		},
		{
			name:     "mixed separators with extra spaces",
			input:    " alice ,  rex2004 ; 14-02-1999 ",
			expected: []string{"alice", "rex2004", "14-02-1999"},
		},
		{
			name:     "tokens without alphanumerics are dropped",
			input:    "alice, !!!, --, rex",
			expected: []string{"alice", "rex"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "only separators",
			input:    " , ;  ,",
			expected: nil,
		},
		{
			name:     "unicode seeds kept",
			input:    "café, müller",
			expected: []string{"café", "müller"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, wordlist.SplitSeeds(tt.input))
		})
	}
}
