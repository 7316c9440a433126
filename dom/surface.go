package dom

// Surface is the element the scene is rendered to.
type Surface interface {
	ClientWidth() int

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	OnMouseDown(cb func(MouseEvent)) Release
	OnMouseMove(cb func(MouseEvent)) Release
	OnMouseUp(cb func(MouseEvent)) Release
	OnMouseOut(cb func(MouseEvent)) Release

	OnTouchStart(cb func(TouchEvent)) Release
	OnTouchMove(cb func(TouchEvent)) Release
	OnTouchEnd(cb func(TouchEvent)) Release
}

// Document owns page level resources such as stylesheets.
type Document interface {
	AddStyleSheet(rules ...string) Release
}
