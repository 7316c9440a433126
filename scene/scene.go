// Package scene is a minimal entity/behavior runtime hosting scene components.
package scene

import (
	"fmt"
	"time"

	"github.com/mlange-42/ark/ecs"
	"github.com/seqsense/pcgol/mat"
	"go.uber.org/zap"

	"github.com/seqsense/draglook/dom"
)

type Name string

type Position mat.Vec3

// Rotation holds Euler angles in degrees, applied in Y, X, Z order.
type Rotation mat.Vec3

type attachment struct {
	entity   ecs.Entity
	name     string
	behavior Behavior
	playing  bool
}

type pendingCallback struct {
	fn       func()
	canceled bool
}

type Scene struct {
	world      ecs.World
	transforms *ecs.Map3[Name, Position, Rotation]
	names      *ecs.Filter1[Name]

	registry *Registry
	document dom.Document
	logger   *zap.Logger

	attached []*attachment
	playing  bool
	time     time.Duration

	canvas             dom.Surface
	renderTargetLoaded []*pendingCallback
}

type Option func(*Scene)

func WithLogger(l *zap.Logger) Option {
	return func(s *Scene) {
		s.logger = l
	}
}

func New(registry *Registry, document dom.Document, opts ...Option) *Scene {
	s := &Scene{
		world:    ecs.NewWorld(),
		registry: registry,
		document: document,
		logger:   zap.NewNop(),
	}
	s.transforms = ecs.NewMap3[Name, Position, Rotation](&s.world)
	s.names = ecs.NewFilter1[Name](&s.world)
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Scene) NewEntity(name string) *Entity {
	n := Name(name)
	id := s.transforms.NewEntity(&n, &Position{}, &Rotation{})
	return &Entity{scene: s, id: id}
}

// Find returns the first entity with the given name.
func (s *Scene) Find(name string) (*Entity, bool) {
	q := s.names.Query()
	for q.Next() {
		if string(*q.Get()) == name {
			e := &Entity{scene: s, id: q.Entity()}
			q.Close()
			return e, true
		}
	}
	return nil, false
}

func (s *Scene) RemoveEntity(e *Entity) {
	if !e.Alive() {
		return
	}
	for _, a := range s.attachedTo(e.id) {
		s.detach(a)
	}
	s.world.RemoveEntity(e.id)
}

func (s *Scene) Document() dom.Document {
	return s.document
}

// Canvas returns the render surface once it is loaded.
func (s *Scene) Canvas() (dom.Surface, bool) {
	return s.canvas, s.canvas != nil
}

// SetCanvas loads the render surface and notifies render target listeners.
func (s *Scene) SetCanvas(c dom.Surface) {
	s.canvas = c
	if c == nil {
		return
	}
	pending := s.renderTargetLoaded
	s.renderTargetLoaded = nil
	s.logger.Debug("Render target loaded", zap.Int("listeners", len(pending)))
	for _, p := range pending {
		if !p.canceled {
			p.fn()
		}
	}
}

// OnRenderTargetLoaded calls fn once when the render surface is loaded.
// If it is already loaded, fn is called immediately.
func (s *Scene) OnRenderTargetLoaded(fn func()) dom.Release {
	if s.canvas != nil {
		fn()
		return func() {}
	}
	p := &pendingCallback{fn: fn}
	s.renderTargetLoaded = append(s.renderTargetLoaded, p)
	return func() {
		p.canceled = true
	}
}

func (s *Scene) Attach(e *Entity, component, data string) error {
	if !e.Alive() {
		return ErrEntityRemoved
	}
	if s.find(e.id, component) != nil {
		return fmt.Errorf("%s: %w", component, ErrAlreadyAttached)
	}
	f, ok := s.registry.lookup(component)
	if !ok {
		return fmt.Errorf("%s: %w", component, ErrUnknownComponent)
	}
	b, err := f(e)
	if err != nil {
		return fmt.Errorf("creating %s: %w", component, err)
	}
	a := &attachment{entity: e.id, name: component, behavior: b}
	s.attached = append(s.attached, a)

	b.Init()
	b.Update(data)
	if s.playing {
		b.Play()
		a.playing = true
	}
	s.logger.Debug("Component attached",
		zap.String("entity", e.Name()), zap.String("component", component))
	return nil
}

func (s *Scene) SetAttribute(e *Entity, component, data string) error {
	a := s.find(e.id, component)
	if a == nil {
		return fmt.Errorf("%s: %w", component, ErrNotAttached)
	}
	a.behavior.Update(data)
	return nil
}

// Component returns the behavior attached to e under the given name.
func (s *Scene) Component(e *Entity, component string) (Behavior, bool) {
	a := s.find(e.id, component)
	if a == nil {
		return nil, false
	}
	return a.behavior, true
}

func (s *Scene) Detach(e *Entity, component string) error {
	a := s.find(e.id, component)
	if a == nil {
		return fmt.Errorf("%s: %w", component, ErrNotAttached)
	}
	s.detach(a)
	s.logger.Debug("Component detached",
		zap.String("entity", e.Name()), zap.String("component", component))
	return nil
}

func (s *Scene) Playing() bool {
	return s.playing
}

func (s *Scene) Play() {
	s.playing = true
	for _, a := range s.snapshot() {
		if !a.playing {
			a.playing = true
			a.behavior.Play()
		}
	}
}

func (s *Scene) Pause() {
	s.playing = false
	for _, a := range s.snapshot() {
		if a.playing {
			a.playing = false
			a.behavior.Pause()
		}
	}
}

// Tick advances the scene clock by dt and ticks every playing behavior in
// attach order.
func (s *Scene) Tick(dt time.Duration) {
	if !s.playing {
		return
	}
	s.time += dt
	for _, a := range s.snapshot() {
		if a.playing {
			a.behavior.Tick(s.time, dt)
		}
	}
}

func (s *Scene) Time() time.Duration {
	return s.time
}

func (s *Scene) detach(a *attachment) {
	for i, b := range s.attached {
		if b == a {
			s.attached = append(s.attached[:i], s.attached[i+1:]...)
			break
		}
	}
	a.playing = false
	a.behavior.Remove()
}

func (s *Scene) find(id ecs.Entity, component string) *attachment {
	for _, a := range s.attached {
		if a.entity == id && a.name == component {
			return a
		}
	}
	return nil
}

func (s *Scene) attachedTo(id ecs.Entity) []*attachment {
	var out []*attachment
	for _, a := range s.attached {
		if a.entity == id {
			out = append(out, a)
		}
	}
	return out
}

// snapshot allows behaviors to attach or detach while being iterated.
func (s *Scene) snapshot() []*attachment {
	return append([]*attachment(nil), s.attached...)
}
