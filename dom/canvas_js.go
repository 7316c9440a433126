package dom

import (
	"syscall/js"
)

type Canvas js.Value

var _ Surface = Canvas{}

func (c Canvas) JS() js.Value {
	return js.Value(c)
}

func (c Canvas) ClientWidth() int {
	return js.Value(c).Get("clientWidth").Int()
}

func (c Canvas) ClientHeight() int {
	return js.Value(c).Get("clientHeight").Int()
}

func (c Canvas) SetWidth(width int) {
	js.Value(c).Set("width", width)
}

func (c Canvas) SetHeight(height int) {
	js.Value(c).Set("height", height)
}

func (c Canvas) AddClass(name string) {
	js.Value(c).Get("classList").Call("add", name)
}

func (c Canvas) RemoveClass(name string) {
	js.Value(c).Get("classList").Call("remove", name)
}

func (c Canvas) HasClass(name string) bool {
	return js.Value(c).Get("classList").Call("contains", name).Bool()
}

func (c Canvas) OnMouseDown(cb func(MouseEvent)) Release {
	return c.onMouse("mousedown", cb)
}

func (c Canvas) OnMouseMove(cb func(MouseEvent)) Release {
	return c.onMouse("mousemove", cb)
}

func (c Canvas) OnMouseUp(cb func(MouseEvent)) Release {
	return c.onMouse("mouseup", cb)
}

func (c Canvas) OnMouseOut(cb func(MouseEvent)) Release {
	return c.onMouse("mouseout", cb)
}

func (c Canvas) onMouse(name string, cb func(MouseEvent)) Release {
	return listen(js.Value(c), name, func(event js.Value) {
		cb(parseMouseEvent(event))
	})
}

func (c Canvas) OnTouchStart(cb func(TouchEvent)) Release {
	return c.onTouch("touchstart", cb)
}

func (c Canvas) OnTouchMove(cb func(TouchEvent)) Release {
	return c.onTouch("touchmove", cb)
}

func (c Canvas) OnTouchEnd(cb func(TouchEvent)) Release {
	return c.onTouch("touchend", cb)
}

func (c Canvas) onTouch(name string, cb func(TouchEvent)) Release {
	return listen(js.Value(c), name, func(event js.Value) {
		cb(parseTouchEvent(event))
	})
}
