package core

import "github.com/go-gl/mathgl/mgl32"

// Widget is a flat screen-space rectangle drawn over the scene. Position is
// the top-left corner in device pixels (origin top-left, Y down).
type Widget struct {
	X, Y          int32
	Width, Height int32
	Color         mgl32.Vec4
}

func NewWidget(x, y, width, height int32, color mgl32.Vec4) *Widget {
	return &Widget{X: x, Y: y, Width: width, Height: height, Color: color}
}

func (w *Widget) Move(x, y int32) {
	w.X, w.Y = x, y
}

func (w *Widget) Resize(width, height int32) {
	w.Width, w.Height = width, height
}

func (w *Widget) SetColor(color mgl32.Vec4) { w.Color = color }

// Contains reports whether the device pixel (x, y) lies inside the widget.
func (w *Widget) Contains(x, y int32) bool {
	return x >= w.X && x < w.X+w.Width && y >= w.Y && y < w.Y+w.Height
}

func (w *Widget) Kind() Kind { return KindWidget }

// AppendFields writes pos.xy, dim.xy as ints and color.rgba as floats.
func (w *Widget) AppendFields(ints []int32, floats []float32) ([]int32, []float32) {
	ints = append(ints, w.X, w.Y, w.Width, w.Height)
	floats = append(floats, w.Color[0], w.Color[1], w.Color[2], w.Color[3])
	return ints, floats
}
