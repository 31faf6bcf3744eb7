package coord

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrInvalidArity        = errors.New("vectors must have 2, 3 or 4 components")
	ErrDimensionMismatch   = errors.New("vector dimensions differ")
	ErrDegenerateNormalize = errors.New("cannot normalize a zero-length value")
	ErrDivideByZero        = errors.New("division by zero")
)

// Vec is an immutable vector of 2, 3 or 4 float32 components.
// The zero Vec has no components and is not valid for arithmetic.
type Vec struct {
	n int
	c [4]float32
}

// New builds a vector from its components.
func New(values ...float32) (Vec, error) {
	if len(values) < 2 || len(values) > 4 {
		return Vec{}, fmt.Errorf("%w: got %d", ErrInvalidArity, len(values))
	}
	v := Vec{n: len(values)}
	copy(v.c[:], values)
	return v, nil
}

func Vec2(x, y float32) Vec       { return Vec{n: 2, c: [4]float32{x, y}} }
func Vec3(x, y, z float32) Vec    { return Vec{n: 3, c: [4]float32{x, y, z}} }
func Vec4(x, y, z, w float32) Vec { return Vec{n: 4, c: [4]float32{x, y, z, w}} }

func FromVec2(v mgl32.Vec2) Vec { return Vec2(v[0], v[1]) }
func FromVec3(v mgl32.Vec3) Vec { return Vec3(v[0], v[1], v[2]) }
func FromVec4(v mgl32.Vec4) Vec { return Vec4(v[0], v[1], v[2], v[3]) }

// Size returns the number of components.
func (v Vec) Size() int { return v.n }

// At returns component i. It panics when i is outside [0, Size()).
func (v Vec) At(i int) float32 {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("coord: index %d out of range for vec%d", i, v.n))
	}
	return v.c[i]
}

func (v Vec) X() float32 { return v.At(0) }
func (v Vec) Y() float32 { return v.At(1) }
func (v Vec) Z() float32 { return v.At(2) }
func (v Vec) W() float32 { return v.At(3) }

// Components returns a copy of the components.
func (v Vec) Components() []float32 {
	out := make([]float32, v.n)
	copy(out, v.c[:v.n])
	return out
}

func (v Vec) sameSize(o Vec) error {
	if v.n != o.n {
		return fmt.Errorf("%w: vec%d and vec%d", ErrDimensionMismatch, v.n, o.n)
	}
	return nil
}

func (v Vec) Add(o Vec) (Vec, error) {
	if err := v.sameSize(o); err != nil {
		return Vec{}, err
	}
	out := Vec{n: v.n}
	for i := 0; i < v.n; i++ {
		out.c[i] = v.c[i] + o.c[i]
	}
	return out, nil
}

func (v Vec) Sub(o Vec) (Vec, error) {
	if err := v.sameSize(o); err != nil {
		return Vec{}, err
	}
	out := Vec{n: v.n}
	for i := 0; i < v.n; i++ {
		out.c[i] = v.c[i] - o.c[i]
	}
	return out, nil
}

// Scale multiplies every component by k.
func (v Vec) Scale(k float32) Vec {
	out := Vec{n: v.n}
	for i := 0; i < v.n; i++ {
		out.c[i] = v.c[i] * k
	}
	return out
}

// Div divides every component by k.
func (v Vec) Div(k float32) (Vec, error) {
	if k == 0 {
		return Vec{}, ErrDivideByZero
	}
	out := v.divide(float64(k))
	if !out.finite() {
		return Vec{}, fmt.Errorf("%w: %v / %g is not finite", ErrDivideByZero, v, k)
	}
	return out, nil
}

// divide divides component-wise in float64 so that subnormal divisors do not
// overflow through a reciprocal.
func (v Vec) divide(k float64) Vec {
	out := Vec{n: v.n}
	for i := 0; i < v.n; i++ {
		out.c[i] = float32(float64(v.c[i]) / k)
	}
	return out
}

func (v Vec) finite() bool {
	for i := 0; i < v.n; i++ {
		f := float64(v.c[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (v Vec) Abs() Vec {
	out := Vec{n: v.n}
	for i := 0; i < v.n; i++ {
		out.c[i] = float32(math.Abs(float64(v.c[i])))
	}
	return out
}

// Len is the euclidean length.
func (v Vec) Len() float32 {
	return float32(v.len64())
}

func (v Vec) len64() float64 {
	var sum float64
	for i := 0; i < v.n; i++ {
		sum += float64(v.c[i]) * float64(v.c[i])
	}
	return math.Sqrt(sum)
}

// Normalize fails with ErrDegenerateNormalize for the zero vector and never
// returns non-finite components.
func (v Vec) Normalize() (Vec, error) {
	l := v.len64()
	if l == 0 {
		return Vec{}, ErrDegenerateNormalize
	}
	out := v.divide(l)
	if !out.finite() {
		return Vec{}, fmt.Errorf("%w: %v", ErrDegenerateNormalize, v)
	}
	return out, nil
}

// ApproxEqual compares component-wise within eps. Vectors of different
// sizes are never equal.
func (v Vec) ApproxEqual(o Vec, eps float32) bool {
	if v.n != o.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if !mgl32.FloatEqualThreshold(v.c[i], o.c[i], eps) {
			return false
		}
	}
	return true
}

// Vec3 converts to an mgl32.Vec3; it fails unless Size() is 3.
func (v Vec) Vec3() (mgl32.Vec3, error) {
	if v.n != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w: want vec3, have vec%d", ErrDimensionMismatch, v.n)
	}
	return mgl32.Vec3{v.c[0], v.c[1], v.c[2]}, nil
}

func (v Vec) Vec2() (mgl32.Vec2, error) {
	if v.n != 2 {
		return mgl32.Vec2{}, fmt.Errorf("%w: want vec2, have vec%d", ErrDimensionMismatch, v.n)
	}
	return mgl32.Vec2{v.c[0], v.c[1]}, nil
}

func (v Vec) Vec4() (mgl32.Vec4, error) {
	if v.n != 4 {
		return mgl32.Vec4{}, fmt.Errorf("%w: want vec4, have vec%d", ErrDimensionMismatch, v.n)
	}
	return mgl32.Vec4{v.c[0], v.c[1], v.c[2], v.c[3]}, nil
}

func (v Vec) String() string {
	parts := make([]string, v.n)
	for i := 0; i < v.n; i++ {
		parts[i] = fmt.Sprint(v.c[i])
	}
	return "<" + strings.Join(parts, ", ") + ">"
}
