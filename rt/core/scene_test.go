package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/raycekar/raycekar/rt/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAddReturnsIndex(t *testing.T) {
	scene := NewScene()
	assert.Equal(t, 0, scene.Add(NewCamera(mgl32.Vec3{}, mgl32.QuatIdent(), 1)))
	assert.Equal(t, 1, scene.Add(NewSphere(mgl32.Vec3{1, 2, 3}, 0.5)))
	assert.Equal(t, 2, scene.Add(NewSphere(mgl32.Vec3{4, 5, 6}, 1)))
	assert.Equal(t, 3, scene.Len())
}

// Removing index 0 shifts everyone else down: an index captured before the
// removal now points at a different object.
func TestSceneRemoveShiftsIndices(t *testing.T) {
	scene := NewScene()
	a := NewSphere(mgl32.Vec3{0, 0, 0}, 1)
	b := NewSphere(mgl32.Vec3{1, 0, 0}, 1)
	c := NewSphere(mgl32.Vec3{2, 0, 0}, 1)
	scene.Add(a)
	idxB := scene.Add(b)
	idxC := scene.Add(c)

	require.NoError(t, scene.Remove(0))
	require.Equal(t, 2, scene.Len())

	got, ok := scene.Get(idxB - 1)
	require.True(t, ok)
	assert.Same(t, b, got)
	got, ok = scene.Get(idxC - 1)
	require.True(t, ok)
	assert.Same(t, c, got)

	stale, ok := scene.Get(idxB)
	require.True(t, ok)
	assert.Same(t, c, stale, "stale index silently refers to the next object")

	_, ok = scene.Get(idxC)
	assert.False(t, ok)
}

func TestSceneRemoveOutOfRange(t *testing.T) {
	scene := NewScene()
	scene.Add(NewSphere(mgl32.Vec3{}, 1))
	assert.ErrorIs(t, scene.Remove(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, scene.Remove(-1), ErrIndexOutOfRange)
}

func TestSceneHandlesSurviveShifts(t *testing.T) {
	scene := NewScene()
	scene.Add(NewSphere(mgl32.Vec3{}, 1))
	idx := scene.Add(NewSphere(mgl32.Vec3{1, 1, 1}, 2))
	h, ok := scene.Handle(idx)
	require.True(t, ok)

	require.NoError(t, scene.Remove(0))
	moved, ok := scene.IndexOf(h)
	require.True(t, ok)
	assert.Equal(t, 0, moved)

	assert.True(t, scene.RemoveHandle(h))
	_, ok = scene.IndexOf(h)
	assert.False(t, ok)
	_, ok = scene.Lookup(h)
	assert.False(t, ok)
	assert.False(t, scene.RemoveHandle(h))
}

func TestSceneEachOrderAndRestart(t *testing.T) {
	scene := NewScene()
	for i := 0; i < 4; i++ {
		scene.Add(NewSphere(mgl32.Vec3{float32(i), 0, 0}, 1))
	}

	collect := func() []int {
		var seen []int
		scene.Each(func(i int, obj Object) bool {
			seen = append(seen, i)
			assert.Equal(t, float32(i), obj.(*Sphere).Position.X())
			return true
		})
		return seen
	}
	assert.Equal(t, []int{0, 1, 2, 3}, collect())
	assert.Equal(t, []int{0, 1, 2, 3}, collect())

	var first []int
	scene.Each(func(i int, _ Object) bool {
		first = append(first, i)
		return i < 1
	})
	assert.Equal(t, []int{0, 1}, first)
}

func TestSceneCamera(t *testing.T) {
	scene := NewScene()
	_, _, ok := scene.Camera()
	assert.False(t, ok)

	scene.Add(NewSphere(mgl32.Vec3{}, 1))
	cam := NewCamera(mgl32.Vec3{0, -5, 0}, mgl32.QuatIdent(), coord.DegToRad(70))
	scene.Add(cam)
	got, idx, ok := scene.Camera()
	require.True(t, ok)
	assert.Same(t, cam, got)
	assert.Equal(t, 1, idx)
}

func TestKindFieldCounts(t *testing.T) {
	objects := []Object{
		NewCamera(mgl32.Vec3{1, 2, 3}, mgl32.QuatIdent(), 1),
		NewSphere(mgl32.Vec3{1, 2, 3}, 1),
		NewBox(mgl32.Vec3{1, 2, 3}, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1}),
		NewPointLight(mgl32.Vec3{1, 2, 3}, 1, 1, 2, mgl32.Vec3{1, 1, 1}),
		NewWidget(1, 2, 3, 4, mgl32.Vec4{1, 0, 0, 1}),
	}
	for _, obj := range objects {
		ints, floats := obj.AppendFields(nil, nil)
		assert.Len(t, ints, obj.Kind().IntFields(), obj.Kind().String())
		assert.Len(t, floats, obj.Kind().FloatFields(), obj.Kind().String())
	}
	for _, k := range Kinds {
		name := k.String()
		back, ok := ParseKind(name)
		require.True(t, ok, name)
		assert.Equal(t, k, back)
	}
	assert.False(t, Kind(99).Known())
	assert.Equal(t, "kind(99)", Kind(99).String())
}

func TestBoxRecordPadding(t *testing.T) {
	rot := coord.QuatFromAxisAngle(mgl32.Vec3{0, 0, 1}, math.Pi/2)
	b := NewBox(mgl32.Vec3{1, 2, 3}, rot, mgl32.Vec3{4, 5, 6})
	_, floats := b.AppendFields(nil, nil)
	require.Len(t, floats, 12)
	assert.Equal(t, float32(0), floats[3])
	assert.Equal(t, rot.W, floats[4])
	assert.Equal(t, []float32{4, 5, 6, 0}, floats[8:])
}

func TestPoseRoundTrip(t *testing.T) {
	p := NewPose(mgl32.Vec3{1, 2, 3}, coord.QuatFromAxisAngle(mgl32.Vec3{0, 0, 1}, math.Pi/2))
	world := p.ToWorld(mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 1, world[0], 1e-5)
	assert.InDelta(t, 3, world[1], 1e-5)
	assert.InDelta(t, 3, world[2], 1e-5)

	local := p.ToLocal(world)
	assert.InDelta(t, 1, local[0], 1e-5)
	assert.InDelta(t, 0, local[1], 1e-5)
}

func TestCameraForward(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.QuatIdent(), 1)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.Forward())

	cam.Rotate(coord.QuatFromAxisAngle(mgl32.Vec3{0, 0, 1}, math.Pi/2))
	f := cam.Forward()
	assert.InDelta(t, -1, f[0], 1e-6)
	assert.InDelta(t, 0, f[1], 1e-6)
}

func TestWidgetContains(t *testing.T) {
	w := NewWidget(10, 20, 5, 5, mgl32.Vec4{})
	assert.True(t, w.Contains(10, 20))
	assert.True(t, w.Contains(14, 24))
	assert.False(t, w.Contains(15, 20))
	assert.False(t, w.Contains(10, 25))

	w.Move(0, 0)
	w.Resize(1, 1)
	assert.True(t, w.Contains(0, 0))
	assert.False(t, w.Contains(1, 0))
}

func TestSceneReleasesRemovedObjects(t *testing.T) {
	scene := NewScene()
	scene.Add(NewSphere(mgl32.Vec3{}, 1))
	scene.Add(NewSphere(mgl32.Vec3{1, 0, 0}, 1))
	scene.Add(NewSphere(mgl32.Vec3{2, 0, 0}, 1))

	require.NoError(t, scene.Remove(0))
	require.Equal(t, 2, scene.Len())
	tail := scene.entries[:3][2]
	assert.Nil(t, tail.obj, "vacated slot still references an object")
	assert.Equal(t, NilHandle, tail.handle)

	scene.Clear()
	assert.Equal(t, 0, scene.Len())
	for i, e := range scene.entries[:2] {
		assert.Nil(t, e.obj, "slot %d", i)
	}
}
