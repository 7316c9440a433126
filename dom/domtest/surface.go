// Package domtest provides in-memory dom implementations for tests.
package domtest

import (
	"github.com/seqsense/draglook/dom"
)

type listeners[T any] struct {
	next int
	cbs  map[int]func(T)
}

func (l *listeners[T]) add(cb func(T)) dom.Release {
	if l.cbs == nil {
		l.cbs = make(map[int]func(T))
	}
	id := l.next
	l.next++
	l.cbs[id] = cb
	return dom.Once(func() { delete(l.cbs, id) })
}

func (l *listeners[T]) dispatch(e T) {
	for i := 0; i < l.next; i++ {
		if cb, ok := l.cbs[i]; ok {
			cb(e)
		}
	}
}

// Surface records classes and dispatches synthetic events to registered
// listeners.
type Surface struct {
	Width int

	classes map[string]bool

	mouseDown, mouseMove, mouseUp, mouseOut listeners[dom.MouseEvent]
	touchStart, touchMove, touchEnd         listeners[dom.TouchEvent]
}

func NewSurface(width int) *Surface {
	return &Surface{
		Width:   width,
		classes: make(map[string]bool),
	}
}

func (s *Surface) ClientWidth() int { return s.Width }

func (s *Surface) AddClass(name string)      { s.classes[name] = true }
func (s *Surface) RemoveClass(name string)   { delete(s.classes, name) }
func (s *Surface) HasClass(name string) bool { return s.classes[name] }

func (s *Surface) OnMouseDown(cb func(dom.MouseEvent)) dom.Release { return s.mouseDown.add(cb) }
func (s *Surface) OnMouseMove(cb func(dom.MouseEvent)) dom.Release { return s.mouseMove.add(cb) }
func (s *Surface) OnMouseUp(cb func(dom.MouseEvent)) dom.Release   { return s.mouseUp.add(cb) }
func (s *Surface) OnMouseOut(cb func(dom.MouseEvent)) dom.Release  { return s.mouseOut.add(cb) }

func (s *Surface) OnTouchStart(cb func(dom.TouchEvent)) dom.Release { return s.touchStart.add(cb) }
func (s *Surface) OnTouchMove(cb func(dom.TouchEvent)) dom.Release  { return s.touchMove.add(cb) }
func (s *Surface) OnTouchEnd(cb func(dom.TouchEvent)) dom.Release   { return s.touchEnd.add(cb) }

func (s *Surface) MouseDown(e dom.MouseEvent) { s.mouseDown.dispatch(e) }
func (s *Surface) MouseMove(e dom.MouseEvent) { s.mouseMove.dispatch(e) }
func (s *Surface) MouseUp(e dom.MouseEvent)   { s.mouseUp.dispatch(e) }
func (s *Surface) MouseOut(e dom.MouseEvent)  { s.mouseOut.dispatch(e) }

func (s *Surface) TouchStart(e dom.TouchEvent) { s.touchStart.dispatch(e) }
func (s *Surface) TouchMove(e dom.TouchEvent)  { s.touchMove.dispatch(e) }
func (s *Surface) TouchEnd(e dom.TouchEvent)   { s.touchEnd.dispatch(e) }

// Listeners returns the number of registered listeners of all event types.
func (s *Surface) Listeners() int {
	return len(s.mouseDown.cbs) + len(s.mouseMove.cbs) + len(s.mouseUp.cbs) + len(s.mouseOut.cbs) +
		len(s.touchStart.cbs) + len(s.touchMove.cbs) + len(s.touchEnd.cbs)
}

// Document counts stylesheets currently attached.
type Document struct {
	Sheets [][]string
}

func (d *Document) AddStyleSheet(rules ...string) dom.Release {
	d.Sheets = append(d.Sheets, append([]string{}, rules...))
	i := len(d.Sheets) - 1
	return dom.Once(func() { d.Sheets[i] = nil })
}

// Active returns the number of stylesheets not yet released.
func (d *Document) Active() int {
	n := 0
	for _, s := range d.Sheets {
		if s != nil {
			n++
		}
	}
	return n
}
