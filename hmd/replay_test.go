package hmd

import (
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
)

func TestReplay(t *testing.T) {
	poses := []Pose{
		{Position: mat.Vec3{1, 0, 0}},
		{Position: mat.Vec3{2, 0, 0}},
	}
	testCases := map[string]struct {
		loop     bool
		expected []float32
	}{
		"Once": {
			loop:     false,
			expected: []float32{1, 2, 2, 2},
		},
		"Loop": {
			loop:     true,
			expected: []float32{1, 2, 1, 2},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			r := NewReplay(poses, tt.loop)
			assert.Equal(t, IdentityPose(), r.Pose(), "pose before the first update must be identity")
			for i, x := range tt.expected {
				r.Update()
				assert.Equal(t, x, r.Pose().Position[0], "frame %d", i)
			}
			assert.Equal(t, !tt.loop, r.Done())
		})
	}
}

func TestReplay_Empty(t *testing.T) {
	r := NewReplay(nil, true)
	r.Update()
	assert.Equal(t, IdentityPose(), r.Pose())
}

func TestStatic(t *testing.T) {
	p := Pose{Position: mat.Vec3{1, 2, 3}, Orientation: FromEuler(0.1, 0.2, 0.3)}
	s := NewStatic(p)
	s.Update()
	assert.Equal(t, p, s.Pose())
}
