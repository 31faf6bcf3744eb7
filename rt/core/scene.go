package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var ErrIndexOutOfRange = errors.New("scene index out of range")

// Handle identifies an object independently of its position in the scene.
// It stays valid while the object is in the scene and never resolves again
// once the object has been removed.
type Handle uuid.UUID

var NilHandle Handle

func (h Handle) String() string { return uuid.UUID(h).String() }

type entry struct {
	handle Handle
	obj    Object
}

// Scene is an ordered list of objects. An object's index is its position in
// the list; that index is what the backend writes into the contact buffer.
// Removing an object shifts every later index down by one, so indices must
// not be held across a removal. Use handles for that.
//
// Scene does no locking. Mutate it between frames only.
type Scene struct {
	entries []entry
}

func NewScene() *Scene {
	return &Scene{entries: []entry{}}
}

// Add appends obj and returns its index.
func (s *Scene) Add(obj Object) int {
	idx := len(s.entries)
	s.entries = append(s.entries, entry{handle: Handle(uuid.New()), obj: obj})
	return idx
}

// Remove deletes the object at index; later objects move down one slot.
func (s *Scene) Remove(index int) error {
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(s.entries))
	}
	s.entries = slices.Delete(s.entries, index, index+1)
	return nil
}

// RemoveHandle deletes the object identified by h, if still present.
func (s *Scene) RemoveHandle(h Handle) bool {
	idx, ok := s.IndexOf(h)
	if !ok {
		return false
	}
	return s.Remove(idx) == nil
}

func (s *Scene) Len() int { return len(s.entries) }

func (s *Scene) Get(index int) (Object, bool) {
	if index < 0 || index >= len(s.entries) {
		return nil, false
	}
	return s.entries[index].obj, true
}

// Handle returns the stable handle of the object currently at index.
func (s *Scene) Handle(index int) (Handle, bool) {
	if index < 0 || index >= len(s.entries) {
		return NilHandle, false
	}
	return s.entries[index].handle, true
}

// IndexOf returns the current index of the object identified by h.
func (s *Scene) IndexOf(h Handle) (int, bool) {
	for i, e := range s.entries {
		if e.handle == h {
			return i, true
		}
	}
	return -1, false
}

// Lookup resolves a handle straight to its object.
func (s *Scene) Lookup(h Handle) (Object, bool) {
	idx, ok := s.IndexOf(h)
	if !ok {
		return nil, false
	}
	return s.entries[idx].obj, true
}

// Each visits objects in index order until fn returns false. fn must not
// add or remove objects.
func (s *Scene) Each(fn func(index int, obj Object) bool) {
	for i, e := range s.entries {
		if !fn(i, e.obj) {
			return
		}
	}
}

// Objects returns a snapshot of the objects in index order.
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.obj
	}
	return out
}

// Camera returns the first camera in the scene, if any.
func (s *Scene) Camera() (*Camera, int, bool) {
	for i, e := range s.entries {
		if c, ok := e.obj.(*Camera); ok {
			return c, i, true
		}
	}
	return nil, -1, false
}

// Clear empties the scene and drops its references to the removed objects.
func (s *Scene) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
