package coord

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Quaternions are plain mgl32.Quat values: W is the scalar part (n) and V
// holds (ni, nj, nk). Nothing here normalizes implicitly.

// QuatFromAxisAngle builds n = cos(θ/2), (ni,nj,nk) = axis·sin(θ/2).
// The axis is used as given; pass a unit axis to get a rotation.
func QuatFromAxisAngle(axis mgl32.Vec3, rad float32) mgl32.Quat {
	s, c := math.Sincos(float64(rad) / 2)
	return mgl32.Quat{W: float32(c), V: axis.Mul(float32(s))}
}

// QuatToAxisAngle is the inverse of QuatFromAxisAngle for unit quaternions.
// A quaternion with no rotation reports the X axis and a zero angle.
func QuatToAxisAngle(q mgl32.Quat) (mgl32.Vec3, float32) {
	w := math.Max(-1, math.Min(1, float64(q.W)))
	angle := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)
	if s < 1e-6 {
		return mgl32.Vec3{1, 0, 0}, float32(angle)
	}
	return q.V.Mul(float32(1 / s)), float32(angle)
}

// QuatMul is the Hamilton product a ⊗ b. When composing rotations the left
// operand is applied last.
func QuatMul(a, b mgl32.Quat) mgl32.Quat {
	return mgl32.Quat{
		W: a.W*b.W - a.V[0]*b.V[0] - a.V[1]*b.V[1] - a.V[2]*b.V[2],
		V: mgl32.Vec3{
			a.W*b.V[0] + a.V[0]*b.W + a.V[1]*b.V[2] - a.V[2]*b.V[1],
			a.W*b.V[1] + a.V[1]*b.W + a.V[2]*b.V[0] - a.V[0]*b.V[2],
			a.W*b.V[2] + a.V[2]*b.W + a.V[0]*b.V[1] - a.V[1]*b.V[0],
		},
	}
}

func Conjugate(q mgl32.Quat) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: q.V.Mul(-1)}
}

// Rotate applies q to v with the sandwich product q ⊗ (0,v) ⊗ conj(q).
// The result only describes a rotation when q has unit length.
func Rotate(q mgl32.Quat, v mgl32.Vec3) mgl32.Vec3 {
	r := QuatMul(QuatMul(q, mgl32.Quat{W: 0, V: v}), Conjugate(q))
	return r.V
}

// QuatLen is the four-component euclidean norm.
func QuatLen(q mgl32.Quat) float32 {
	return float32(quatLen64(q))
}

func quatLen64(q mgl32.Quat) float64 {
	w, x, y, z := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])
	return math.Sqrt(w*w + x*x + y*y + z*z)
}

func NormalizeQuat(q mgl32.Quat) (mgl32.Quat, error) {
	l := quatLen64(q)
	if l == 0 {
		return mgl32.Quat{}, ErrDegenerateNormalize
	}
	w := FromVec4(mgl32.Vec4{q.W, q.V[0], q.V[1], q.V[2]}).divide(l)
	if !w.finite() {
		return mgl32.Quat{}, fmt.Errorf("%w: %v", ErrDegenerateNormalize, q)
	}
	return mgl32.Quat{W: w.c[0], V: mgl32.Vec3{w.c[1], w.c[2], w.c[3]}}, nil
}

func DegToRad(deg float32) float32 { return mgl32.DegToRad(deg) }
func RadToDeg(rad float32) float32 { return mgl32.RadToDeg(rad) }
