package core

import "github.com/go-gl/mathgl/mgl32"

type Sphere struct {
	Position mgl32.Vec3
	Radius   float32
}

func NewSphere(pos mgl32.Vec3, radius float32) *Sphere {
	return &Sphere{Position: pos, Radius: radius}
}

func (s *Sphere) Move(pos mgl32.Vec3)   { s.Position = pos }
func (s *Sphere) Resize(radius float32) { s.Radius = radius }

func (s *Sphere) Kind() Kind { return KindSphere }

// AppendFields writes pos.xyz, radius.
func (s *Sphere) AppendFields(ints []int32, floats []float32) ([]int32, []float32) {
	floats = appendVec3(floats, s.Position)
	floats = append(floats, s.Radius)
	return ints, floats
}

// Box is an oriented box. Dimensions are full edge lengths, not half extents.
type Box struct {
	Pose
	Dimensions mgl32.Vec3
}

func NewBox(pos mgl32.Vec3, rot mgl32.Quat, dim mgl32.Vec3) *Box {
	return &Box{Pose: NewPose(pos, rot), Dimensions: dim}
}

func (b *Box) Resize(dim mgl32.Vec3) { b.Dimensions = dim }

func (b *Box) Kind() Kind { return KindBox }

// AppendFields writes pos.xyz, pad, rot.(n,ni,nj,nk), dim.xyz, pad so that
// every vec4 group starts on a 16-byte boundary.
func (b *Box) AppendFields(ints []int32, floats []float32) ([]int32, []float32) {
	floats = appendVec3(floats, b.Position)
	floats = append(floats, 0)
	floats = appendQuat(floats, b.Rotation)
	floats = appendVec3(floats, b.Dimensions)
	floats = append(floats, 0)
	return ints, floats
}
