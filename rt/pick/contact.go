package pick

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("pick position outside the contact buffer")
	ErrBufferSize  = errors.New("contact buffer size does not match its dimensions")
)

// NoHit is what the backend writes for pixels that show no object. Any
// negative value is treated the same way.
const NoHit int32 = -1

// ContactBuffer is the backend's per-pixel object index read-back. Rows are
// stored bottom-up: row 0 is the bottom of the viewport.
type ContactBuffer struct {
	Width   int
	Height  int
	Indices []int32
}

func NewContactBuffer(width, height int) ContactBuffer {
	b := ContactBuffer{Width: width, Height: height, Indices: make([]int32, width*height)}
	b.Fill(NoHit)
	return b
}

// DecodeContacts reads width*height little-endian int32 values.
func DecodeContacts(width, height int, raw []byte) (ContactBuffer, error) {
	if width <= 0 || height <= 0 || len(raw) != width*height*4 {
		return ContactBuffer{}, fmt.Errorf("%w: %dx%d needs %d bytes, have %d",
			ErrBufferSize, width, height, width*height*4, len(raw))
	}
	b := ContactBuffer{Width: width, Height: height, Indices: make([]int32, width*height)}
	for i := range b.Indices {
		b.Indices[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return b, nil
}

// Validate checks that Indices covers exactly Width*Height pixels.
func (b ContactBuffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 || len(b.Indices) != b.Width*b.Height {
		return fmt.Errorf("%w: %dx%d with %d entries", ErrBufferSize, b.Width, b.Height, len(b.Indices))
	}
	return nil
}

func (b ContactBuffer) Fill(v int32) {
	for i := range b.Indices {
		b.Indices[i] = v
	}
}

// At returns the value stored at buffer coordinates (x, row), bottom-left
// origin.
func (b ContactBuffer) At(x, row int) int32 {
	return b.Indices[row*b.Width+x]
}

// Set stores v at buffer coordinates (x, row), bottom-left origin.
func (b ContactBuffer) Set(x, row int, v int32) {
	b.Indices[row*b.Width+x] = v
}
