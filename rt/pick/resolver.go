package pick

import (
	"fmt"
	"math"

	"github.com/raycekar/raycekar/rt/core"
)

// Resolver turns pointer positions into contact buffer lookups.
//
// Pointer positions use device coordinates: origin at the top-left of the
// viewport, Y growing downward. The contact buffer is stored with the
// rendering convention: origin bottom-left, Y growing upward. The row is
// therefore flipped before indexing.
type Resolver struct{}

// BufferRow converts a device Y coordinate into a contact buffer row.
func BufferRow(deviceY, height int) int {
	return height - 1 - deviceY
}

// Resolve returns the object index under device pixel (x, y). hit is false
// when the pixel shows no object. Positions outside the buffer fail with
// ErrOutOfBounds; callers treat that as no hit.
//
// The index is only as fresh as the frame the buffer was rendered from;
// check it against the current scene before use.
func (Resolver) Resolve(x, y int, buf ContactBuffer) (int, bool, error) {
	if err := buf.Validate(); err != nil {
		return -1, false, err
	}
	if x < 0 || x >= buf.Width || y < 0 || y >= buf.Height {
		return -1, false, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, buf.Width, buf.Height)
	}
	v := buf.At(x, BufferRow(y, buf.Height))
	if v < 0 {
		return -1, false, nil
	}
	return int(v), true, nil
}

// ResolveDevice is Resolve for the fractional cursor positions reported by
// windowing systems.
func (r Resolver) ResolveDevice(px, py float64, buf ContactBuffer) (int, bool, error) {
	return r.Resolve(int(math.Floor(px)), int(math.Floor(py)), buf)
}

// Pick is a resolved hit against the current scene.
type Pick struct {
	Index  int
	Handle core.Handle
	Object core.Object
}

// Picker resolves pointer positions against a scene. Indices that no longer
// exist in the scene and cameras are never reported as hits.
type Picker struct {
	Resolver Resolver
	Scene    *core.Scene
}

func NewPicker(scene *core.Scene) *Picker {
	return &Picker{Scene: scene}
}

func (p *Picker) Pick(px, py float64, buf ContactBuffer) (Pick, bool, error) {
	idx, hit, err := p.Resolver.ResolveDevice(px, py, buf)
	if err != nil || !hit {
		return Pick{}, false, err
	}
	obj, ok := p.Scene.Get(idx)
	if !ok || obj.Kind() == core.KindCamera {
		return Pick{}, false, nil
	}
	h, _ := p.Scene.Handle(idx)
	return Pick{Index: idx, Handle: h, Object: obj}, true, nil
}
