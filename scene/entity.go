package scene

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"github.com/seqsense/pcgol/mat"
)

type Entity struct {
	scene *Scene
	id    ecs.Entity
}

func (e *Entity) Scene() *Scene {
	return e.scene
}

func (e *Entity) Alive() bool {
	return e.scene.world.Alive(e.id)
}

func (e *Entity) Name() string {
	if !e.Alive() {
		return ""
	}
	n, _, _ := e.scene.transforms.Get(e.id)
	return string(*n)
}

func (e *Entity) Position() mat.Vec3 {
	if !e.Alive() {
		return mat.Vec3{}
	}
	_, p, _ := e.scene.transforms.Get(e.id)
	return mat.Vec3(*p)
}

func (e *Entity) SetPosition(v mat.Vec3) {
	if !e.Alive() {
		return
	}
	_, p, _ := e.scene.transforms.Get(e.id)
	*p = Position(v)
}

// Rotation returns the Euler angles in degrees.
func (e *Entity) Rotation() mat.Vec3 {
	if !e.Alive() {
		return mat.Vec3{}
	}
	_, _, r := e.scene.transforms.Get(e.id)
	return mat.Vec3(*r)
}

func (e *Entity) SetRotation(v mat.Vec3) {
	if !e.Alive() {
		return
	}
	_, _, r := e.scene.transforms.Get(e.id)
	*r = Rotation(v)
}

// ViewMatrix returns the world-to-camera transform of the entity used as a
// camera.
func (e *Entity) ViewMatrix() mat.Mat4 {
	r := e.Rotation()
	p := e.Position()
	return mat.Rotate(0, 0, 1, -degToRad(r[2])).
		MulAffine(mat.Rotate(1, 0, 0, -degToRad(r[0]))).
		MulAffine(mat.Rotate(0, 1, 0, -degToRad(r[1]))).
		MulAffine(mat.Translate(-p[0], -p[1], -p[2]))
}

func degToRad(d float32) float32 {
	return d * math.Pi / 180
}
