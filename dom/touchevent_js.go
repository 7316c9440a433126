package dom

import (
	"syscall/js"
)

func parseTouchEvent(event js.Value) TouchEvent {
	touches := event.Get("touches")
	n := touches.Get("length").Int()
	e := TouchEvent{Touches: make([]Touch, 0, n)}
	for i := 0; i < n; i++ {
		t := touches.Index(i)
		e.Touches = append(e.Touches, Touch{
			Identifier: t.Get("identifier").Int(),
			PageX:      t.Get("pageX").Float(),
			PageY:      t.Get("pageY").Float(),
		})
	}
	return e
}
