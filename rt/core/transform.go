package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/raycekar/raycekar/rt/coord"
)

// Pose is the shared placement of oriented objects. Rotation is stored as
// given; callers normalize it before handing it to the backend.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func NewPose(pos mgl32.Vec3, rot mgl32.Quat) Pose {
	return Pose{Position: pos, Rotation: rot}
}

func (p *Pose) Move(pos mgl32.Vec3)   { p.Position = pos }
func (p *Pose) Rotate(rot mgl32.Quat) { p.Rotation = rot }

// ToWorld maps a point from object space to world space.
func (p Pose) ToWorld(local mgl32.Vec3) mgl32.Vec3 {
	return p.Position.Add(coord.Rotate(p.Rotation, local))
}

// ToLocal maps a world-space point back into object space.
func (p Pose) ToLocal(world mgl32.Vec3) mgl32.Vec3 {
	return coord.Rotate(coord.Conjugate(p.Rotation), world.Sub(p.Position))
}

func appendVec3(floats []float32, v mgl32.Vec3) []float32 {
	return append(floats, v[0], v[1], v[2])
}

func appendQuat(floats []float32, q mgl32.Quat) []float32 {
	return append(floats, q.W, q.V[0], q.V[1], q.V[2])
}
