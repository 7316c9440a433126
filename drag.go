package draglook

import (
	"math"

	"github.com/seqsense/draglook/dom"
)

const (
	mouseSensitivity = 0.002
	touchSensitivity = 0.5
	maxPitch         = math.Pi / 2
)

// drag accumulates the rotation requested by mouse and touch drags.
type drag struct {
	yaw, pitch float64

	mouseDown bool
	// Screen position of the last mouse event seen while dragging.
	screenX0, screenY0 float64

	touchDown bool
	pageX0    float64
}

func (d *drag) dragging() bool {
	return d.mouseDown || d.touchDown
}

func (d *drag) release() {
	d.mouseDown = false
	d.touchDown = false
}

func (d *drag) mouseDragStart(e dom.MouseEvent) {
	d.mouseDown = true
	d.screenX0, d.screenY0 = e.ScreenX, e.ScreenY
}

func (d *drag) mouseDragEnd() {
	d.mouseDown = false
}

func (d *drag) mouseDrag(e dom.MouseEvent) {
	if !d.mouseDown {
		return
	}
	mx, my := e.MovementX, e.MovementY
	if !e.HasMovement {
		mx = e.ScreenX - d.screenX0
		my = e.ScreenY - d.screenY0
	}
	d.screenX0, d.screenY0 = e.ScreenX, e.ScreenY

	d.yaw += mx * mouseSensitivity
	d.pitch = clampPitch(d.pitch + my*mouseSensitivity)
}

// touchDragStart begins a yaw drag. Gestures with more than one finger are
// ignored.
func (d *drag) touchDragStart(e dom.TouchEvent) {
	if len(e.Touches) != 1 {
		return
	}
	d.touchDown = true
	d.pageX0 = e.Touches[0].PageX
}

func (d *drag) touchDragEnd() {
	d.touchDown = false
}

// touchDrag turns horizontal finger movement into yaw. A swipe across the
// whole surface turns the camera by half a revolution.
func (d *drag) touchDrag(e dom.TouchEvent, width int) {
	if !d.touchDown || len(e.Touches) == 0 || width <= 0 {
		return
	}
	x := e.Touches[0].PageX
	d.yaw += 2 * math.Pi * (x - d.pageX0) / float64(width) * touchSensitivity
	d.pageX0 = x
}

func clampPitch(p float64) float64 {
	if p < -maxPitch {
		return -maxPitch
	} else if p > maxPitch {
		return maxPitch
	}
	return p
}
