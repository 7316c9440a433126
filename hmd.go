package draglook

import (
	"github.com/go-gl/mathgl/mgl32"
)

var axisY = mgl32.Vec3{0, 1, 0}

// zeroing holds the yaw offset captured from the device orientation when the
// device first reports a rotation, so the camera starts facing forward.
type zeroing struct {
	baseline mgl32.Quat
	zeroed   bool
}

func (z *zeroing) reset() {
	z.baseline = mgl32.QuatIdent()
	z.zeroed = false
}

// compose returns the device orientation relative to the baseline. The
// baseline cancels the device yaw only and keeps its pitch and roll. The
// second return value reports whether the baseline was captured by this call.
func (z *zeroing) compose(device mgl32.Quat) (mgl32.Quat, bool) {
	captured := false
	if !z.zeroed && device != z.baseline {
		_, yaw, _ := eulerYXZ(device)
		z.baseline = mgl32.QuatRotate(float32(-yaw), axisY)
		z.zeroed = true
		captured = true
	}
	return z.baseline.Mul(device), captured
}
