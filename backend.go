package raycekar

import (
	"context"

	"github.com/raycekar/raycekar/rt/compile"
	"github.com/raycekar/raycekar/rt/pick"
)

// Backend is the compute side of a frame. Upload receives the compiled scene
// streams, Render runs the frame and blocks until it is done, and Contacts
// returns the contact buffer Render produced.
type Backend interface {
	Upload(bufs compile.Buffers) error
	Render(ctx context.Context) error
	Contacts() (pick.ContactBuffer, error)
}
