package dom

type MouseButton int

const (
	MouseButtonNull MouseButton = -1
)

// Release removes a previously registered listener or resource.
// Calling it more than once is a no-op.
type Release func()

type MouseEvent struct {
	Button           MouseButton
	ScreenX, ScreenY float64

	// MovementX and MovementY are valid only when HasMovement is set.
	// Browsers without pointer movement reporting leave it unset.
	MovementX, MovementY float64
	HasMovement          bool
}

type Touch struct {
	Identifier   int
	PageX, PageY float64
}

type TouchEvent struct {
	Touches []Touch
}

// Once wraps r so that only the first call takes effect.
func Once(r Release) Release {
	done := false
	return func() {
		if done || r == nil {
			return
		}
		done = true
		r()
	}
}
