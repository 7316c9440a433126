package draglook

import (
	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/draglook/dom"
	"github.com/seqsense/draglook/hmd"
)

// Entity is the camera entity the controls write to.
// Rotation is in degrees.
type Entity interface {
	Position() mat.Vec3
	SetPosition(mat.Vec3)
	SetRotation(mat.Vec3)
}

// Host is the runtime owning the render surface.
type Host interface {
	// Canvas returns the render surface, or false before it is loaded.
	Canvas() (dom.Surface, bool)
	// OnRenderTargetLoaded calls fn once when the render surface is loaded.
	OnRenderTargetLoaded(fn func()) dom.Release
	Document() dom.Document
}

// Tracker is a device pose source. Update refreshes the pose returned by Pose.
type Tracker interface {
	Update()
	Pose() hmd.Pose
}
