package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/raycekar/raycekar/rt/events"
	"github.com/raycekar/raycekar/rt/logging"
)

// Sink receives input from the router. The App implements it: pointer
// positions are used for picking, queued events fire after the frame's
// contact buffer is available.
type Sink interface {
	SetPointer(x, y float64)
	Queue(name string, args ...any)
}

// InputRouter turns GLFW callbacks into pointer updates and named events.
// Key events are queued as "key_<NAME>" and mouse buttons as
// "mouse_<BUTTON>", each with the glfw.Action as first argument.
type InputRouter struct {
	sink   Sink
	logger logging.Logger
}

func NewInputRouter(sink Sink, logger logging.Logger) *InputRouter {
	return &InputRouter{sink: sink, logger: logging.OrNop(logger)}
}

// Attach installs the router's callbacks on w. Callbacks run inside
// glfw.PollEvents on the main thread.
func (r *InputRouter) Attach(w *glfw.Window) {
	w.SetKeyCallback(r.KeyCallback)
	w.SetMouseButtonCallback(r.MouseButtonCallback)
	w.SetCursorPosCallback(r.CursorPosCallback)
}

func (r *InputRouter) KeyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	name, ok := KeyName(key)
	if !ok {
		r.logger.Debugf("Ignoring unmapped key %d", int(key))
		return
	}
	r.logger.Debugf("keyCallback for %q (%s)", name, ActionName(action))
	r.sink.Queue(events.KeyEvent(name), action)
}

func (r *InputRouter) MouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	name, ok := ButtonName(button)
	if !ok {
		return
	}
	r.sink.Queue(events.MouseEvent(name), action)
}

func (r *InputRouter) CursorPosCallback(_ *glfw.Window, x, y float64) {
	r.sink.SetPointer(x, y)
}

func ActionName(action glfw.Action) string {
	switch action {
	case glfw.Press:
		return "press"
	case glfw.Repeat:
		return "repeat"
	case glfw.Release:
		return "release"
	default:
		return "unknown"
	}
}
