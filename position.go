package draglook

import (
	"github.com/seqsense/pcgol/mat"
)

// positionDelta moves the entity by the device movement since the previous
// frame, leaving any position set by other components in place.
type positionDelta struct {
	prev mat.Vec3
}

func (p *positionDelta) reset() {
	p.prev = mat.Vec3{}
}

func (p *positionDelta) apply(e Entity, device mat.Vec3) {
	delta := device.Sub(p.prev)
	p.prev = device
	e.SetPosition(e.Position().Add(delta))
}
