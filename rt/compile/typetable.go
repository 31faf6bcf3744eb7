package compile

import (
	"errors"
	"fmt"

	"github.com/raycekar/raycekar/rt/core"
)

var (
	ErrUnregisteredType = errors.New("object type is not registered in the type table")
	ErrFieldCount       = errors.New("object wrote the wrong number of fields")
	ErrInvalidTable     = errors.New("invalid type table")
)

// TypeTable maps object kinds to the tags written into the type stream. A
// kind's tag is its position in the table. The backend decodes records with
// the same table, so the order is part of the wire format.
type TypeTable struct {
	kinds []core.Kind
	tags  map[core.Kind]int32
}

// DefaultTypeTable is the order the shipped backends expect.
var DefaultTypeTable = MustTypeTable(
	core.KindCamera,
	core.KindSphere,
	core.KindBox,
	core.KindPointLight,
	core.KindWidget,
)

func NewTypeTable(kinds ...core.Kind) (TypeTable, error) {
	t := TypeTable{
		kinds: make([]core.Kind, 0, len(kinds)),
		tags:  make(map[core.Kind]int32, len(kinds)),
	}
	for _, k := range kinds {
		if !k.Known() {
			return TypeTable{}, fmt.Errorf("%w: unknown kind %s", ErrInvalidTable, k)
		}
		if _, dup := t.tags[k]; dup {
			return TypeTable{}, fmt.Errorf("%w: %s listed twice", ErrInvalidTable, k)
		}
		t.tags[k] = int32(len(t.kinds))
		t.kinds = append(t.kinds, k)
	}
	return t, nil
}

func MustTypeTable(kinds ...core.Kind) TypeTable {
	t, err := NewTypeTable(kinds...)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTypeTable builds a table from kind names such as "sphere".
func ParseTypeTable(names []string) (TypeTable, error) {
	kinds := make([]core.Kind, 0, len(names))
	for _, name := range names {
		k, ok := core.ParseKind(name)
		if !ok {
			return TypeTable{}, fmt.Errorf("%w: unknown kind name %q", ErrInvalidTable, name)
		}
		kinds = append(kinds, k)
	}
	return NewTypeTable(kinds...)
}

// Tag returns the wire tag of k.
func (t TypeTable) Tag(k core.Kind) (int32, error) {
	tag, ok := t.tags[k]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnregisteredType, k)
	}
	return tag, nil
}

// Kind returns the kind carried by tag.
func (t TypeTable) Kind(tag int32) (core.Kind, bool) {
	if tag < 0 || int(tag) >= len(t.kinds) {
		return 0, false
	}
	return t.kinds[tag], true
}

func (t TypeTable) Len() int { return len(t.kinds) }

// Kinds returns the table order.
func (t TypeTable) Kinds() []core.Kind {
	out := make([]core.Kind, len(t.kinds))
	copy(out, t.kinds)
	return out
}
