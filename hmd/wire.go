package hmd

import (
	"encoding/json"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
)

// Frame is a pose on the wire between the pose server and the browser.
type Frame struct {
	Seq         uint64     `json:"seq"`
	Position    [3]float32 `json:"position"`
	Orientation [4]float32 `json:"orientation"` // x, y, z, w
}

func NewFrame(seq uint64, p Pose) Frame {
	q := p.Orientation
	return Frame{
		Seq:         seq,
		Position:    [3]float32(p.Position),
		Orientation: [4]float32{q.V[0], q.V[1], q.V[2], q.W},
	}
}

func (f Frame) Pose() Pose {
	o := f.Orientation
	q := mgl32.Quat{W: o[3], V: mgl32.Vec3{o[0], o[1], o[2]}}
	if q.Len() == 0 {
		q = mgl32.QuatIdent()
	}
	return Pose{
		Position:    mat.Vec3(f.Position),
		Orientation: q,
	}
}

func DecodeFrame(b []byte) (Frame, error) {
	var f Frame
	err := json.Unmarshal(b, &f)
	return f, err
}

// Stream is a tracker fed by frames arriving asynchronously.
// Received frames become visible on the next Update, so every read within a
// frame sees the same pose.
type Stream struct {
	pose    Pose
	next    *Frame
	lastSeq uint64
	started bool
}

func NewStream() *Stream {
	return &Stream{pose: IdentityPose()}
}

// Push queues f. Frames older than the latest received one are dropped.
func (s *Stream) Push(f Frame) bool {
	if s.started && f.Seq <= s.lastSeq {
		return false
	}
	s.started = true
	s.lastSeq = f.Seq
	s.next = &f
	return true
}

func (s *Stream) Update() {
	if s.next == nil {
		return
	}
	s.pose = s.next.Pose()
	s.next = nil
}

func (s *Stream) Pose() Pose {
	return s.pose
}
