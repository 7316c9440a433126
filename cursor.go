package draglook

import (
	"github.com/seqsense/draglook/dom"
)

const (
	ClassGrab     = "grab"
	ClassGrabbing = "grabbing"
)

var cursorStyleRules = []string{
	"." + ClassGrab + "{cursor:-moz-grab;cursor:-webkit-grab;cursor:grab;}",
	"." + ClassGrabbing + "{cursor:-moz-grabbing;cursor:-webkit-grabbing;cursor:grabbing;}",
}

// setCursor shows the grab cursor while the surface accepts drags and the
// grabbing cursor during a drag.
func setCursor(s dom.Surface, active, dragging bool) {
	switch {
	case !active:
		s.RemoveClass(ClassGrab)
		s.RemoveClass(ClassGrabbing)
	case dragging:
		s.RemoveClass(ClassGrab)
		s.AddClass(ClassGrabbing)
	default:
		s.RemoveClass(ClassGrabbing)
		s.AddClass(ClassGrab)
	}
}
