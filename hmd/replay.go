package hmd

// Replay plays back recorded poses, one per Update.
type Replay struct {
	poses []Pose
	loop  bool
	i     int
}

func NewReplay(poses []Pose, loop bool) *Replay {
	return &Replay{poses: poses, loop: loop, i: -1}
}

func (r *Replay) Update() {
	if len(r.poses) == 0 {
		return
	}
	switch {
	case r.i+1 < len(r.poses):
		r.i++
	case r.loop:
		r.i = 0
	}
}

// Pose returns the current pose. Before the first Update, and for an empty
// replay, it is the identity pose.
func (r *Replay) Pose() Pose {
	if r.i < 0 {
		return IdentityPose()
	}
	return r.poses[r.i]
}

func (r *Replay) Done() bool {
	return !r.loop && r.i == len(r.poses)-1
}
