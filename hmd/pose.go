// Package hmd provides head-mounted display pose sources.
package hmd

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// Pose is a device position and orientation in tracking space.
type Pose struct {
	Position    mat.Vec3
	Orientation mgl32.Quat
}

func IdentityPose() Pose {
	return Pose{Orientation: mgl32.QuatIdent()}
}

// FromEuler returns the rotation of the intrinsic yaw, pitch, roll sequence
// (Y, then X, then Z). Angles are in radians.
func FromEuler(pitch, yaw, roll float64) mgl32.Quat {
	qy := mgl32.QuatRotate(float32(yaw), axisY)
	qx := mgl32.QuatRotate(float32(pitch), axisX)
	qz := mgl32.QuatRotate(float32(roll), axisZ)
	return qy.Mul(qx).Mul(qz)
}

// Static is a tracker for a device which never moves.
// It stands in for the headset when none is connected.
type Static struct {
	pose Pose
}

func NewStatic(p Pose) *Static {
	return &Static{pose: p}
}

func (s *Static) Update() {}

func (s *Static) Pose() Pose {
	return s.pose
}
