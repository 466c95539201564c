package common

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
)

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{name: "zero", n: 0, expected: "0 reputation points"},
		{name: "one", n: 1, expected: "1 reputation point"},
		{name: "many", n: 3, expected: "3 reputation points"},
		{name: "large", n: 1000, expected: "1000 reputation points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPoints(tt.n))
		})
	}
}

func TestMention(t *testing.T) {
	assert.Equal(t, "<@123456789>", Mention(snowflake.ID(123456789)))
}

func TestFormatCooldown(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{name: "zero", seconds: 0, expected: "0 seconds"},
		{name: "one second", seconds: 1, expected: "1 second"},
		{name: "seconds only", seconds: 45, expected: "45 seconds"},
		{name: "exact minute", seconds: 60, expected: "1 minute"},
		{name: "minutes and seconds", seconds: 90, expected: "1 minute, 30 seconds"},
		{name: "exact hour", seconds: 3600, expected: "1 hour"},
		{name: "hours hide seconds", seconds: 3725, expected: "1 hour, 2 minutes"},
		{name: "plural everything", seconds: 7320, expected: "2 hours, 2 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCooldown(tt.seconds))
		})
	}
}
