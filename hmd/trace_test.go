package hmd

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTrace(t *testing.T) {
	const src = `
loop: true
frames:
  - position: [0, 1.6, 0]
    euler: [0, 90, 0]
  - position: [0, 1.6, 0.5]
    quaternion: [0, 0, 0, 2]
`
	tr, err := LoadTrace(strings.NewReader(src))
	require.NoError(t, err)

	assert.True(t, tr.Loop)
	assert.Equal(t, float64(defaultTraceRate), tr.Rate)

	poses := tr.Poses()
	require.Len(t, poses, 2)

	assert.Equal(t, mat.Vec3{0, 1.6, 0}, poses[0].Position)
	expected := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	assert.True(t, poses[0].Orientation.ApproxEqualThreshold(expected, 1e-5),
		"expected: %v, got: %v", expected, poses[0].Orientation)

	assert.Equal(t, mat.Vec3{0, 1.6, 0.5}, poses[1].Position)
	assert.True(t, poses[1].Orientation.ApproxEqualThreshold(mgl32.QuatIdent(), 1e-6),
		"quaternion must be normalized, got: %v", poses[1].Orientation)
}

func TestLoadTrace_Errors(t *testing.T) {
	testCases := map[string]struct {
		src string
		err error
	}{
		"Empty": {
			src: "",
			err: ErrEmptyTrace,
		},
		"NoFrames": {
			src: "rate: 30\n",
			err: ErrEmptyTrace,
		},
		"NoOrientation": {
			src: "frames:\n  - position: [0, 0, 0]\n",
			err: ErrAmbiguousOrientation,
		},
		"BothOrientations": {
			src: "frames:\n  - euler: [0, 0, 0]\n    quaternion: [0, 0, 0, 1]\n",
			err: ErrAmbiguousOrientation,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			_, err := LoadTrace(strings.NewReader(tt.src))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFromEuler(t *testing.T) {
	forward := mgl32.Vec3{0, 0, -1}

	// Yaw turns the forward vector to the left (counter-clockwise seen from above).
	v := FromEuler(0, math.Pi/2, 0).Rotate(forward)
	assert.InDelta(t, -1, v[0], 1e-5)
	assert.InDelta(t, 0, v[2], 1e-5)

	// Pitch is applied in the yawed frame.
	v = FromEuler(math.Pi/2, math.Pi/2, 0).Rotate(forward)
	assert.InDelta(t, 1, v[1], 1e-5)
}
