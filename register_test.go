package draglook

import (
	"testing"
	"time"

	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqsense/draglook/dom"
	"github.com/seqsense/draglook/dom/domtest"
	"github.com/seqsense/draglook/hmd"
	"github.com/seqsense/draglook/scene"
)

func TestRegister(t *testing.T) {
	assert.ErrorIs(t, Register(nil, hmd.NewStatic(hmd.IdentityPose())), ErrHostUnavailable)

	reg := scene.NewRegistry()
	tracker := &fakeTracker{pose: hmd.IdentityPose()}
	require.NoError(t, Register(reg, tracker))
	assert.ErrorIs(t, Register(reg, tracker), scene.ErrDuplicateComponent)

	doc := &domtest.Document{}
	s := scene.New(reg, doc)
	cam := s.NewEntity("camera")
	require.NoError(t, s.Attach(cam, ComponentName, "enabled: true;"))
	assert.Equal(t, 1, doc.Active())

	surface := domtest.NewSurface(640)
	s.SetCanvas(surface)
	s.Play()
	assert.Equal(t, 7, surface.Listeners())

	surface.MouseDown(dom.MouseEvent{})
	surface.MouseMove(dom.MouseEvent{MovementX: -200, HasMovement: true})
	tracker.pose.Position = mat.Vec3{0, 0.5, 0}
	s.Tick(16 * time.Millisecond)
	assert.InDelta(t, -22.918, cam.Rotation()[1], 1e-2)
	assert.Equal(t, mat.Vec3{0, 0.5, 0}, cam.Position())

	require.NoError(t, s.SetAttribute(cam, ComponentName, "enabled: false"))
	assert.False(t, surface.HasClass(ClassGrabbing))

	s.RemoveEntity(cam)
	assert.Equal(t, 0, surface.Listeners())
	assert.Equal(t, 0, doc.Active())
}
