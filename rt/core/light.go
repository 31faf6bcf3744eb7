package core

import "github.com/go-gl/mathgl/mgl32"

// PointLight is an emitting sphere. Radius is the size of the emitter,
// Falloff the exponent applied to distance by the backend.
type PointLight struct {
	Position  mgl32.Vec3
	Radius    float32
	Intensity float32
	Falloff   float32
	Color     mgl32.Vec3
}

func NewPointLight(pos mgl32.Vec3, radius, intensity, falloff float32, color mgl32.Vec3) *PointLight {
	return &PointLight{
		Position:  pos,
		Radius:    radius,
		Intensity: intensity,
		Falloff:   falloff,
		Color:     color,
	}
}

func (l *PointLight) Move(pos mgl32.Vec3)       { l.Position = pos }
func (l *PointLight) Resize(radius float32)     { l.Radius = radius }
func (l *PointLight) SetIntensity(v float32)    { l.Intensity = v }
func (l *PointLight) SetFalloff(v float32)      { l.Falloff = v }
func (l *PointLight) SetColor(color mgl32.Vec3) { l.Color = color }

func (l *PointLight) Kind() Kind { return KindPointLight }

// AppendFields writes pos.xyz, radius, intensity, falloff, color.rgb.
func (l *PointLight) AppendFields(ints []int32, floats []float32) ([]int32, []float32) {
	floats = appendVec3(floats, l.Position)
	floats = append(floats, l.Radius, l.Intensity, l.Falloff)
	floats = appendVec3(floats, l.Color)
	return ints, floats
}
