package draglook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig(t *testing.T) {
	testCases := map[string]struct {
		data     string
		base     Config
		expected Config
		err      bool
	}{
		"Empty": {
			base:     DefaultConfig(),
			expected: Config{Enabled: true},
		},
		"Blank": {
			data:     " ; ",
			base:     Config{Enabled: false},
			expected: Config{Enabled: false},
		},
		"YAML": {
			data:     "enabled: false",
			base:     DefaultConfig(),
			expected: Config{Enabled: false},
		},
		"PropertyList": {
			data:     "enabled: true;",
			base:     Config{Enabled: false},
			expected: Config{Enabled: true},
		},
		"UnknownKey": {
			data:     "speed: 2",
			base:     Config{Enabled: false},
			expected: Config{Enabled: false},
		},
		"Invalid": {
			data:     "enabled: maybe",
			base:     Config{Enabled: false},
			expected: Config{Enabled: false},
			err:      true,
		},
		"NotMapping": {
			data:     "[1, 2]",
			base:     DefaultConfig(),
			expected: Config{Enabled: true},
			err:      true,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c, err := ParseConfig(tt.data, tt.base)
			if tt.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, c)
		})
	}
}
