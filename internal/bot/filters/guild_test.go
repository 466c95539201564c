package filters

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
)

func TestGuildFilterAllow(t *testing.T) {
	home := snowflake.ID(100)
	foreign := snowflake.ID(200)

	tests := []struct {
		name     string
		filterID int64
		guildID  *snowflake.ID
		expected bool
	}{
		{
			name:     "dm is always denied",
			filterID: 0,
			guildID:  nil,
			expected: false,
		},
		{
			name:     "unrestricted filter allows any guild",
			filterID: 0,
			guildID:  &foreign,
			expected: true,
		},
		{
			name:     "matching guild allowed",
			filterID: 100,
			guildID:  &home,
			expected: true,
		},
		{
			name:     "foreign guild denied",
			filterID: 100,
			guildID:  &foreign,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewGuildFilter(tt.filterID)
			assert.Equal(t, tt.expected, f.Allow(tt.guildID))
		})
	}
}
