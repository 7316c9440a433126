package draglook

import (
	"github.com/seqsense/draglook/scene"
)

const ComponentName = "drag-look-controls"

// Register adds the controls to reg under ComponentName. Every attached
// instance reads its device pose from tracker.
func Register(reg *scene.Registry, tracker Tracker, opts ...Option) error {
	if reg == nil || tracker == nil {
		return ErrHostUnavailable
	}
	return reg.Register(ComponentName, func(e *scene.Entity) (scene.Behavior, error) {
		c, err := New(e, e.Scene(), tracker, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
