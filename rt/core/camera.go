package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/raycekar/raycekar/rt/coord"
)

// Camera is the viewpoint the backend renders from. Fov is the field of
// view in radians.
type Camera struct {
	Pose
	Fov float32
}

func NewCamera(pos mgl32.Vec3, rot mgl32.Quat, fov float32) *Camera {
	return &Camera{Pose: NewPose(pos, rot), Fov: fov}
}

func (c *Camera) SetFov(fov float32) { c.Fov = fov }

// Forward is the view direction. The unrotated camera looks down +Y.
func (c *Camera) Forward() mgl32.Vec3 {
	return coord.Rotate(c.Rotation, mgl32.Vec3{0, 1, 0})
}

func (c *Camera) Kind() Kind { return KindCamera }

// AppendFields writes pos.xyz, fov, rot.(n,ni,nj,nk).
func (c *Camera) AppendFields(ints []int32, floats []float32) ([]int32, []float32) {
	floats = appendVec3(floats, c.Position)
	floats = append(floats, c.Fov)
	floats = appendQuat(floats, c.Rotation)
	return ints, floats
}
