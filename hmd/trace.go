package hmd

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyTrace           = errors.New("trace has no frames")
	ErrAmbiguousOrientation = errors.New("frame must have exactly one of euler or quaternion")
)

// Trace is a recorded sequence of device poses.
//
//	rate: 60
//	loop: true
//	frames:
//	  - position: [0, 1.6, 0]
//	    euler: [0, 90, 0]  # pitch, yaw, roll in degrees
//	  - position: [0, 1.6, 0.1]
//	    quaternion: [0, 0, 0, 1]  # x, y, z, w
type Trace struct {
	Rate   float64      `yaml:"rate"`
	Loop   bool         `yaml:"loop"`
	Frames []TraceFrame `yaml:"frames"`
}

type TraceFrame struct {
	Position   [3]float32  `yaml:"position"`
	Euler      *[3]float64 `yaml:"euler,omitempty"`
	Quaternion *[4]float32 `yaml:"quaternion,omitempty"`
}

const defaultTraceRate = 60

func LoadTrace(r io.Reader) (*Trace, error) {
	t := &Trace{}
	if err := yaml.NewDecoder(r).Decode(t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTrace
		}
		return nil, err
	}
	if len(t.Frames) == 0 {
		return nil, ErrEmptyTrace
	}
	for i, f := range t.Frames {
		if (f.Euler == nil) == (f.Quaternion == nil) {
			return nil, fmt.Errorf("frame %d: %w", i, ErrAmbiguousOrientation)
		}
	}
	if t.Rate <= 0 {
		t.Rate = defaultTraceRate
	}
	return t, nil
}

func (f TraceFrame) Pose() Pose {
	p := Pose{Position: mat.Vec3(f.Position)}
	switch {
	case f.Euler != nil:
		e := *f.Euler
		p.Orientation = FromEuler(degToRad(e[0]), degToRad(e[1]), degToRad(e[2]))
	case f.Quaternion != nil:
		q := *f.Quaternion
		p.Orientation = mgl32.Quat{W: q[3], V: mgl32.Vec3{q[0], q[1], q[2]}}.Normalize()
	default:
		p.Orientation = mgl32.QuatIdent()
	}
	return p
}

func (t *Trace) Poses() []Pose {
	poses := make([]Pose, 0, len(t.Frames))
	for _, f := range t.Frames {
		poses = append(poses, f.Pose())
	}
	return poses
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
