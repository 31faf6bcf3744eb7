package compile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/raycekar/raycekar/rt/core"
	"github.com/raycekar/raycekar/rt/logging"
)

// Buffers holds the three streams the backend binds every frame:
//
//	Types:  one int32 tag per object
//	Ints:   each object's int fields, in scene order
//	Floats: each object's float fields, in scene order
//
// All values are 4 bytes, little endian.
type Buffers struct {
	Count  int
	Types  []byte
	Ints   []byte
	Floats []byte
}

// Tags decodes the type stream.
func (b Buffers) Tags() []int32 { return decodeInt32s(b.Types) }

// IntFields decodes the int stream.
func (b Buffers) IntFields() []int32 { return decodeInt32s(b.Ints) }

// FloatFields decodes the float stream.
func (b Buffers) FloatFields() []float32 {
	out := make([]float32, len(b.Floats)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b.Floats[i*4:]))
	}
	return out
}

// Equal reports whether both sets of streams are byte-identical.
func (b Buffers) Equal(o Buffers) bool {
	return b.Count == o.Count &&
		bytes.Equal(b.Types, o.Types) &&
		bytes.Equal(b.Ints, o.Ints) &&
		bytes.Equal(b.Floats, o.Floats)
}

// Digest hashes the three streams. Equal buffers have equal digests.
func (b Buffers) Digest() uint64 {
	d := xxhash.New()
	var lens [12]byte
	binary.LittleEndian.PutUint32(lens[0:], uint32(len(b.Types)))
	binary.LittleEndian.PutUint32(lens[4:], uint32(len(b.Ints)))
	binary.LittleEndian.PutUint32(lens[8:], uint32(len(b.Floats)))
	_, _ = d.Write(lens[:])
	_, _ = d.Write(b.Types)
	_, _ = d.Write(b.Ints)
	_, _ = d.Write(b.Floats)
	return d.Sum64()
}

func decodeInt32s(data []byte) []int32 {
	out := make([]int32, len(data)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}

// Compiler serializes a scene into Buffers. It keeps scratch space between
// calls but every Compile walks the whole scene.
type Compiler struct {
	table  TypeTable
	logger logging.Logger

	ints   []int32
	floats []float32
}

func NewCompiler(table TypeTable, logger logging.Logger) *Compiler {
	return &Compiler{
		table:  table,
		logger: logging.OrNop(logger),
		ints:   make([]int32, 0, 64),
		floats: make([]float32, 0, 256),
	}
}

func (c *Compiler) Table() TypeTable { return c.table }

// Compile encodes every object of scene. The result depends only on the
// objects' current state, so compiling an unchanged scene twice yields
// identical bytes. The returned slices are owned by the caller.
func (c *Compiler) Compile(scene *core.Scene) (Buffers, error) {
	count := scene.Len()
	types := make([]byte, 0, count*4)
	c.ints = c.ints[:0]
	c.floats = c.floats[:0]

	var err error
	scene.Each(func(index int, obj core.Object) bool {
		kind := obj.Kind()
		var tag int32
		tag, err = c.table.Tag(kind)
		if err != nil {
			err = fmt.Errorf("object %d: %w", index, err)
			return false
		}
		types = binary.LittleEndian.AppendUint32(types, uint32(tag))

		intsBefore, floatsBefore := len(c.ints), len(c.floats)
		c.ints, c.floats = obj.AppendFields(c.ints, c.floats)
		gotInts, gotFloats := len(c.ints)-intsBefore, len(c.floats)-floatsBefore
		if gotInts != kind.IntFields() || gotFloats != kind.FloatFields() {
			err = fmt.Errorf("object %d (%s): %w: got %d ints/%d floats, want %d/%d",
				index, kind, ErrFieldCount, gotInts, gotFloats, kind.IntFields(), kind.FloatFields())
			return false
		}
		return true
	})
	if err != nil {
		c.logger.Errorf("Scene compile failed: %v", err)
		return Buffers{}, err
	}

	out := Buffers{
		Count:  count,
		Types:  types,
		Ints:   make([]byte, len(c.ints)*4),
		Floats: make([]byte, len(c.floats)*4),
	}
	for i, v := range c.ints {
		binary.LittleEndian.PutUint32(out.Ints[i*4:], uint32(v))
	}
	for i, v := range c.floats {
		binary.LittleEndian.PutUint32(out.Floats[i*4:], math.Float32bits(v))
	}

	if c.logger.DebugEnabled() {
		c.logger.Debugf("Compiled %d objects: %d type bytes, %d int bytes, %d float bytes",
			count, len(out.Types), len(out.Ints), len(out.Floats))
	}
	return out, nil
}
