package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsTrigger(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "plain thanks",
			input:    "thanks for the help",
			expected: true,
		},
		{
			name:     "uppercase tysm",
			input:    "TYSM for the help @Bob",
			expected: true,
		},
		{
			name:     "ty alone",
			input:    "ty",
			expected: true,
		},
		{
			name:     "no trigger",
			input:    "hello",
			expected: false,
		},
		{
			name:     "empty message",
			input:    "",
			expected: false,
		},
		{
			// substring matching is intentional: "party" contains "ty"
			name:     "false positive inside word",
			input:    "great party everyone",
			expected: true,
		},
		{
			name:     "letters split across word",
			input:    "study group at nine",
			expected: false,
		},
		{
			name:     "mixed case thanks",
			input:    "ThAnKs a lot",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsTrigger(tt.input))
		})
	}
}
