package dom

import (
	"syscall/js"
)

func parseMouseEvent(event js.Value) MouseEvent {
	b := MouseButtonNull
	button := event.Get("button")
	if !button.IsNull() && !button.IsUndefined() {
		b = MouseButton(button.Int())
	}
	e := MouseEvent{
		Button:  b,
		ScreenX: event.Get("screenX").Float(),
		ScreenY: event.Get("screenY").Float(),
	}
	mx, my := event.Get("movementX"), event.Get("movementY")
	if mx.IsUndefined() || my.IsUndefined() {
		mx, my = event.Get("mozMovementX"), event.Get("mozMovementY")
	}
	if !mx.IsUndefined() && !my.IsUndefined() {
		e.MovementX, e.MovementY = mx.Float(), my.Float()
		e.HasMovement = true
	}
	return e
}
