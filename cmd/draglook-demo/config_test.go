package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	testCases := map[string]struct {
		input    string
		expected config
		err      error
	}{
		"Empty": {
			expected: defaultConfig(),
		},
		"Full": {
			input: `
canvas: view
pointcloud: room.pcd
tracker:
  type: stream
  url: ws://localhost:8081/ws
component: "enabled: false"
camera: [1, 2, 3]
log_level: debug
`,
			expected: config{
				Canvas:     "view",
				PointCloud: "room.pcd",
				Tracker:    trackerConfig{Type: trackerStream, URL: "ws://localhost:8081/ws"},
				Component:  "enabled: false",
				Camera:     [3]float32{1, 2, 3},
				LogLevel:   "debug",
			},
		},
		"ReplayWithoutURL": {
			input: "tracker: {type: replay}",
			err:   errTrackerURL,
		},
		"UnknownTracker": {
			input: "tracker: {type: gamepad}",
			err:   errUnknownTracker,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c, err := loadConfig([]byte(tt.input))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}
