package scene

import (
	"errors"
	"time"
)

var (
	ErrUnknownComponent   = errors.New("unknown component")
	ErrDuplicateComponent = errors.New("component already registered")
	ErrAlreadyAttached    = errors.New("component already attached")
	ErrNotAttached        = errors.New("component not attached")
	ErrEntityRemoved      = errors.New("entity removed")
)

// Behavior is a component instance attached to an entity.
//
// The scene calls Init once, then Update with the attribute data, then Play
// when the scene is running. Tick is called once per frame while playing.
// Update is called again whenever the attribute data changes.
type Behavior interface {
	Init()
	Update(data string)
	Tick(t, dt time.Duration)
	Pause()
	Play()
	Remove()
}

// Factory creates a behavior for an entity.
type Factory func(e *Entity) (Behavior, error)

type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(name string, f Factory) error {
	if _, ok := r.factories[name]; ok {
		return ErrDuplicateComponent
	}
	r.factories[name] = f
	return nil
}

func (r *Registry) lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}
