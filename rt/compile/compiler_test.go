package compile

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/raycekar/raycekar/rt/coord"
	"github.com/raycekar/raycekar/rt/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoScene() *core.Scene {
	scene := core.NewScene()
	scene.Add(core.NewCamera(mgl32.Vec3{0, -5, 0}, coord.QuatFromAxisAngle(mgl32.Vec3{1, 0, 0}, 0), coord.DegToRad(70)))
	scene.Add(core.NewSphere(mgl32.Vec3{-3, 0, 0}, 0.5))
	scene.Add(core.NewBox(mgl32.Vec3{1, 1, 1}, mgl32.QuatIdent(), mgl32.Vec3{2, 3, 4}))
	scene.Add(core.NewPointLight(mgl32.Vec3{0, 0, 5}, 0.1, 3, 2, mgl32.Vec3{1, 0.5, 0.25}))
	scene.Add(core.NewWidget(10, 20, 30, 40, mgl32.Vec4{1, 0, 0, 1}))
	return scene
}

func TestCompileSingleSphere(t *testing.T) {
	scene := core.NewScene()
	scene.Add(core.NewSphere(mgl32.Vec3{1, 2, 3}, 0.5))

	bufs, err := NewCompiler(DefaultTypeTable, nil).Compile(scene)
	require.NoError(t, err)

	sphereTag, err := DefaultTypeTable.Tag(core.KindSphere)
	require.NoError(t, err)

	assert.Equal(t, 1, bufs.Count)
	assert.Equal(t, []int32{sphereTag}, bufs.Tags())
	assert.Empty(t, bufs.Ints)
	assert.Equal(t, []float32{1, 2, 3, 0.5}, bufs.FloatFields())

	want := make([]byte, 16)
	for i, v := range []float32{1, 2, 3, 0.5} {
		binary.LittleEndian.PutUint32(want[i*4:], math.Float32bits(v))
	}
	assert.Equal(t, want, bufs.Floats)
}

func TestCompileLayout(t *testing.T) {
	bufs, err := NewCompiler(DefaultTypeTable, nil).Compile(demoScene())
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 1, 2, 3, 4}, bufs.Tags())
	assert.Equal(t, []int32{10, 20, 30, 40}, bufs.IntFields())

	floats := bufs.FloatFields()
	require.Len(t, floats, 8+4+12+9+4)

	// camera
	assert.Equal(t, []float32{0, -5, 0}, floats[0:3])
	assert.InDelta(t, coord.DegToRad(70), floats[3], 1e-6)
	assert.Equal(t, []float32{1, 0, 0, 0}, floats[4:8])
	// sphere
	assert.Equal(t, []float32{-3, 0, 0, 0.5}, floats[8:12])
	// box
	assert.Equal(t, []float32{1, 1, 1, 0, 1, 0, 0, 0, 2, 3, 4, 0}, floats[12:24])
	// point light
	assert.Equal(t, []float32{0, 0, 5, 0.1, 3, 2, 1, 0.5, 0.25}, floats[24:33])
	// widget
	assert.Equal(t, []float32{1, 0, 0, 1}, floats[33:37])
}

func TestCompileDeterministic(t *testing.T) {
	scene := demoScene()
	c := NewCompiler(DefaultTypeTable, nil)

	first, err := c.Compile(scene)
	require.NoError(t, err)
	second, err := c.Compile(scene)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	obj, _ := scene.Get(1)
	obj.(*core.Sphere).Move(mgl32.Vec3{9, 9, 9})
	third, err := c.Compile(scene)
	require.NoError(t, err)
	assert.False(t, first.Equal(third))
	assert.Equal(t, first.Types, third.Types)
}

func TestCompileEmptyScene(t *testing.T) {
	bufs, err := NewCompiler(DefaultTypeTable, nil).Compile(core.NewScene())
	require.NoError(t, err)
	assert.Equal(t, 0, bufs.Count)
	assert.Empty(t, bufs.Types)
	assert.Empty(t, bufs.Ints)
	assert.Empty(t, bufs.Floats)
}

func TestCompileUnregisteredType(t *testing.T) {
	table := MustTypeTable(core.KindCamera, core.KindSphere)
	scene := core.NewScene()
	scene.Add(core.NewSphere(mgl32.Vec3{}, 1))
	scene.Add(core.NewWidget(0, 0, 1, 1, mgl32.Vec4{}))

	_, err := NewCompiler(table, nil).Compile(scene)
	assert.ErrorIs(t, err, ErrUnregisteredType)
}

type shortSphere struct{}

func (shortSphere) Kind() core.Kind { return core.KindSphere }
func (shortSphere) AppendFields(ints []int32, floats []float32) ([]int32, []float32) {
	return ints, append(floats, 1, 2, 3)
}

func TestCompileFieldCountGuard(t *testing.T) {
	scene := core.NewScene()
	scene.Add(shortSphere{})
	_, err := NewCompiler(DefaultTypeTable, nil).Compile(scene)
	assert.ErrorIs(t, err, ErrFieldCount)
}

func TestCompilerReusesScratchWithoutAliasing(t *testing.T) {
	scene := demoScene()
	c := NewCompiler(DefaultTypeTable, nil)
	first, err := c.Compile(scene)
	require.NoError(t, err)
	saved := append([]byte(nil), first.Floats...)

	require.NoError(t, scene.Remove(0))
	_, err = c.Compile(scene)
	require.NoError(t, err)
	assert.Equal(t, saved, first.Floats)
}

func TestTypeTable(t *testing.T) {
	tag, err := DefaultTypeTable.Tag(core.KindWidget)
	require.NoError(t, err)
	assert.Equal(t, int32(4), tag)

	kind, ok := DefaultTypeTable.Kind(2)
	require.True(t, ok)
	assert.Equal(t, core.KindBox, kind)
	_, ok = DefaultTypeTable.Kind(5)
	assert.False(t, ok)
	assert.Equal(t, 5, DefaultTypeTable.Len())

	_, err = NewTypeTable(core.KindSphere, core.KindSphere)
	assert.ErrorIs(t, err, ErrInvalidTable)
	_, err = NewTypeTable(core.Kind(42))
	assert.ErrorIs(t, err, ErrInvalidTable)

	parsed, err := ParseTypeTable([]string{"sphere", "camera"})
	require.NoError(t, err)
	assert.Equal(t, []core.Kind{core.KindSphere, core.KindCamera}, parsed.Kinds())
	_, err = ParseTypeTable([]string{"teapot"})
	assert.ErrorIs(t, err, ErrInvalidTable)

	assert.Panics(t, func() { MustTypeTable(core.Kind(42)) })
}

func TestBuffersDigest(t *testing.T) {
	c := NewCompiler(DefaultTypeTable, nil)
	scene := demoScene()

	a, err := c.Compile(scene)
	require.NoError(t, err)
	b, err := c.Compile(scene)
	require.NoError(t, err)
	assert.Equal(t, a.Digest(), b.Digest())

	obj, _ := scene.Get(1)
	obj.(*core.Sphere).Resize(0.75)
	moved, err := c.Compile(scene)
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest(), moved.Digest())

	// Same bytes split differently between streams must not collide.
	x := Buffers{Types: []byte{1, 2, 3, 4}, Ints: []byte{5, 6, 7, 8}}
	y := Buffers{Types: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	assert.NotEqual(t, x.Digest(), y.Digest())
}
