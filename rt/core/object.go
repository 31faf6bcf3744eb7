package core

import "fmt"

// Kind identifies one of the closed set of scene object variants.
type Kind uint32

const (
	KindCamera Kind = iota
	KindSphere
	KindBox
	KindPointLight
	KindWidget
)

// Kinds lists every variant in declaration order.
var Kinds = []Kind{KindCamera, KindSphere, KindBox, KindPointLight, KindWidget}

var kindNames = map[Kind]string{
	KindCamera:     "camera",
	KindSphere:     "sphere",
	KindBox:        "box",
	KindPointLight: "point_light",
	KindWidget:     "widget",
}

// fieldCounts is the wire contract: (int fields, float fields) per kind.
var fieldCounts = map[Kind][2]int{
	KindCamera:     {0, 8},
	KindSphere:     {0, 4},
	KindBox:        {0, 12},
	KindPointLight: {0, 9},
	KindWidget:     {4, 4},
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint32(k))
}

// Known reports whether k is one of the declared variants.
func (k Kind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// IntFields is the number of int32 fields a record of this kind carries.
func (k Kind) IntFields() int { return fieldCounts[k][0] }

// FloatFields is the number of float32 fields a record of this kind carries.
func (k Kind) FloatFields() int { return fieldCounts[k][1] }

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Object is implemented by every scene variant. AppendFields appends the
// object's record to ints and floats in the kind's fixed order; it must
// always append exactly Kind().IntFields() and Kind().FloatFields() values.
type Object interface {
	Kind() Kind
	AppendFields(ints []int32, floats []float32) ([]int32, []float32)
}
