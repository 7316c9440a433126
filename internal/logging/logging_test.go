package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	testCases := map[string]struct {
		level   string
		enabled zapcore.Level
		err     bool
	}{
		"Debug": {level: "debug", enabled: zapcore.DebugLevel},
		"Warn":  {level: "warn", enabled: zapcore.WarnLevel},
		"Empty": {level: "", enabled: zapcore.InfoLevel},
		"Bad":   {level: "loud", err: true},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			l, err := New(tt.level)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.enabled-1))
		})
	}
}
