// Package draglook rotates a camera entity by mouse and touch drags, combined
// with the orientation and position reported by a head-mounted display.
package draglook

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
	"go.uber.org/zap"

	"github.com/seqsense/draglook/dom"
)

type State int

const (
	StateInactive State = iota
	StateActiveEnabled
	StateActiveDisabled
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActiveEnabled:
		return "active-enabled"
	case StateActiveDisabled:
		return "active-disabled"
	default:
		return "unknown"
	}
}

// Controls is the drag-look behavior of one camera entity.
// All methods must be called from the event loop driving the host.
type Controls struct {
	entity  Entity
	host    Host
	tracker Tracker
	logger  *zap.Logger

	config  Config
	playing bool

	drag     drag
	zero     zeroing
	position positionDelta

	surface    dom.Surface
	listeners  []dom.Release
	deferred   dom.Release
	styleSheet dom.Release
}

func New(entity Entity, host Host, tracker Tracker, opts ...Option) (*Controls, error) {
	if entity == nil || host == nil || tracker == nil {
		return nil, ErrHostUnavailable
	}
	c := &Controls{
		entity:  entity,
		host:    host,
		tracker: tracker,
		logger:  zap.NewNop(),
		config:  DefaultConfig(),
	}
	for _, o := range opts {
		o(c)
	}
	c.zero.reset()
	return c, nil
}

func (c *Controls) Init() {
	c.drag = drag{}
	c.zero.reset()
	c.position.reset()

	if c.styleSheet != nil {
		c.styleSheet()
	}
	c.styleSheet = nil
	if doc := c.host.Document(); doc != nil {
		c.styleSheet = dom.Once(doc.AddStyleSheet(cursorStyleRules...))
	}
	c.updateCursor()
}

// Update applies component attribute data such as "enabled: false".
// Malformed data is ignored with a warning.
func (c *Controls) Update(data string) {
	cfg, err := ParseConfig(data, c.config)
	if err != nil {
		c.logger.Warn("Ignoring invalid component data",
			zap.String("data", data), zap.Error(err))
	} else {
		c.config = cfg
	}
	c.step()
}

func (c *Controls) Tick(t, dt time.Duration) {
	c.step()
}

func (c *Controls) Play() {
	if c.playing {
		return
	}
	c.playing = true
	c.position.reset()
	c.addEventListeners()
	c.updateCursor()
}

func (c *Controls) Pause() {
	if !c.playing {
		return
	}
	c.playing = false
	c.removeEventListeners()
	c.drag.release()
	c.updateCursor()
}

func (c *Controls) Remove() {
	c.Pause()
	c.updateCursor()
	if c.styleSheet != nil {
		c.styleSheet()
		c.styleSheet = nil
	}
}

func (c *Controls) SetEnabled(enabled bool) {
	c.config.Enabled = enabled
	c.updateCursor()
}

func (c *Controls) Enabled() bool {
	return c.config.Enabled
}

func (c *Controls) State() State {
	switch {
	case !c.playing:
		return StateInactive
	case c.config.Enabled:
		return StateActiveEnabled
	default:
		return StateActiveDisabled
	}
}

// Yaw returns the accumulated drag yaw in radians.
func (c *Controls) Yaw() float64 {
	return c.drag.yaw
}

// Pitch returns the accumulated drag pitch in radians.
func (c *Controls) Pitch() float64 {
	return c.drag.pitch
}

func (c *Controls) Dragging() bool {
	return c.drag.dragging()
}

// ZeroBaseline returns the yaw offset applied to the device orientation and
// whether it has been captured.
func (c *Controls) ZeroBaseline() (mgl32.Quat, bool) {
	return c.zero.baseline, c.zero.zeroed
}

func (c *Controls) step() {
	c.updateCursor()
	if !c.playing || !c.config.Enabled {
		return
	}
	c.tracker.Update()
	pose := c.tracker.Pose()
	c.updateOrientation(pose.Orientation)
	c.position.apply(c.entity, pose.Position)
}

func (c *Controls) updateOrientation(device mgl32.Quat) {
	q, captured := c.zero.compose(device)
	if captured {
		c.logger.Debug("Device orientation zeroed",
			zap.Float32s("baseline", []float32{c.zero.baseline.V[0], c.zero.baseline.V[1], c.zero.baseline.V[2], c.zero.baseline.W}))
	}
	x, y, z := eulerYXZ(q)
	c.entity.SetRotation(mat.Vec3{
		mgl32.RadToDeg(float32(x)) + mgl32.RadToDeg(float32(c.drag.pitch)),
		mgl32.RadToDeg(float32(y)) + mgl32.RadToDeg(float32(c.drag.yaw)),
		mgl32.RadToDeg(float32(z)),
	})
}

func (c *Controls) updateCursor() {
	s, ok := c.host.Canvas()
	if !ok {
		return
	}
	setCursor(s, c.playing && c.config.Enabled, c.drag.dragging())
}

func (c *Controls) addEventListeners() {
	s, ok := c.host.Canvas()
	if !ok {
		if c.deferred == nil {
			c.logger.Debug("Render target not loaded, deferring listeners")
			c.deferred = c.host.OnRenderTargetLoaded(func() {
				c.deferred = nil
				c.addEventListeners()
			})
		}
		return
	}
	if c.surface != nil {
		return
	}
	c.surface = s
	c.listeners = []dom.Release{
		s.OnMouseDown(c.onMouseDown),
		s.OnMouseMove(c.onMouseMove),
		s.OnMouseUp(c.onMouseRelease),
		s.OnMouseOut(c.onMouseRelease),
		s.OnTouchStart(c.onTouchStart),
		s.OnTouchMove(c.onTouchMove),
		s.OnTouchEnd(c.onTouchEnd),
	}
	c.logger.Debug("Listeners attached")
	c.updateCursor()
}

func (c *Controls) removeEventListeners() {
	if c.deferred != nil {
		c.deferred()
		c.deferred = nil
	}
	if c.surface == nil {
		return
	}
	for _, release := range c.listeners {
		release()
	}
	c.listeners = nil
	c.surface = nil
	c.logger.Debug("Listeners released")
}

func (c *Controls) onMouseDown(e dom.MouseEvent) {
	c.drag.mouseDragStart(e)
	c.updateCursor()
}

func (c *Controls) onMouseMove(e dom.MouseEvent) {
	if !c.config.Enabled {
		return
	}
	c.drag.mouseDrag(e)
}

func (c *Controls) onMouseRelease(dom.MouseEvent) {
	c.drag.mouseDragEnd()
	c.updateCursor()
}

func (c *Controls) onTouchStart(e dom.TouchEvent) {
	c.drag.touchDragStart(e)
	c.updateCursor()
}

func (c *Controls) onTouchMove(e dom.TouchEvent) {
	if !c.config.Enabled || c.surface == nil {
		return
	}
	c.drag.touchDrag(e, c.surface.ClientWidth())
}

func (c *Controls) onTouchEnd(dom.TouchEvent) {
	c.drag.touchDragEnd()
	c.updateCursor()
}
