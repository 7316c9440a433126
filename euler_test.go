package draglook

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/seqsense/draglook/hmd"
)

func TestEulerYXZ(t *testing.T) {
	testCases := map[string]struct {
		pitch, yaw, roll float64
	}{
		"Identity":   {},
		"Yaw":        {yaw: 1.2},
		"Pitch":      {pitch: -0.7},
		"Roll":       {roll: 0.4},
		"Combined":   {pitch: 0.3, yaw: -2.5, roll: 0.2},
		"YawBehind":  {pitch: 0.1, yaw: 3.0},
		"NearVertex": {pitch: 1.5, yaw: 0.6, roll: -0.3},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			x, y, z := eulerYXZ(hmd.FromEuler(tt.pitch, tt.yaw, tt.roll))
			if math.Abs(x-tt.pitch) > 1e-4 || math.Abs(y-tt.yaw) > 1e-4 || math.Abs(z-tt.roll) > 1e-4 {
				t.Errorf("Expected: (%f, %f, %f), got: (%f, %f, %f)",
					tt.pitch, tt.yaw, tt.roll, x, y, z)
			}
		})
	}
}

func TestEulerYXZ_GimbalLock(t *testing.T) {
	q := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0})
	x, y, z := eulerYXZ(q)
	if math.Abs(x-math.Pi/2) > 1e-3 {
		t.Errorf("Expected pitch: %f, got: %f", math.Pi/2, x)
	}
	if z != 0 {
		t.Errorf("Roll must be zero at gimbal lock, got: %f", z)
	}
	if math.Abs(y) > 1e-3 {
		t.Errorf("Expected yaw: 0, got: %f", y)
	}
}
