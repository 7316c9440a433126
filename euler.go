package draglook

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const gimbalLockThreshold = 0.9999999

// eulerYXZ decomposes q into intrinsic Y, X, Z rotation angles in radians,
// returned as (x, y, z).
func eulerYXZ(q mgl32.Quat) (x, y, z float64) {
	w, qx, qy, qz := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])

	m11 := 1 - 2*(qy*qy+qz*qz)
	m13 := 2 * (qx*qz + qy*w)
	m21 := 2 * (qx*qy + qz*w)
	m22 := 1 - 2*(qx*qx+qz*qz)
	m23 := 2 * (qy*qz - qx*w)
	m31 := 2 * (qx*qz - qy*w)
	m33 := 1 - 2*(qx*qx+qy*qy)

	x = math.Asin(-clamp(m23, -1, 1))
	if math.Abs(m23) < gimbalLockThreshold {
		y = math.Atan2(m13, m33)
		z = math.Atan2(m21, m22)
	} else {
		y = math.Atan2(-m31, m11)
		z = 0
	}
	return x, y, z
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}
