package events

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/raycekar/raycekar/rt/logging"
)

var ErrAlreadyBound = errors.New("event name is already bound")

// Callback receives whatever arguments the firing site passes, for example
// the key action for key events or the action and pick for mouse events.
type Callback func(args ...any)

type binding struct {
	name     string
	callback Callback
	active   bool
}

// Registry maps event names to callbacks. A binding is created active by
// Bind and then toggled with Activate/Deactivate; it stays registered until
// Unbind. Unknown names are ignored by every operation except Bind.
//
// Callbacks run synchronously on the goroutine that calls Fire. Registry
// does no locking.
type Registry struct {
	bindings map[string]*binding
	logger   logging.Logger
}

func NewRegistry(logger logging.Logger) *Registry {
	return &Registry{
		bindings: make(map[string]*binding),
		logger:   logging.OrNop(logger),
	}
}

// KeyEvent is the event name for a key, e.g. KeyEvent("ESCAPE") is
// "key_ESCAPE".
func KeyEvent(keyName string) string { return "key_" + keyName }

// MouseEvent is the event name for a mouse button, e.g. "mouse_LEFT".
func MouseEvent(button string) string { return "mouse_" + button }

func IsMouseEvent(name string) bool { return strings.HasPrefix(name, "mouse_") }

// Bind registers cb under name and activates it. An existing binding is
// left untouched; Unbind it first to replace it.
func (r *Registry) Bind(name string, cb Callback) error {
	if cb == nil {
		return fmt.Errorf("bind %q: nil callback", name)
	}
	if _, ok := r.bindings[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyBound, name)
	}
	r.bindings[name] = &binding{name: name, callback: cb, active: true}
	r.logger.Debugf("Created event %q", name)
	return nil
}

func (r *Registry) Unbind(name string) {
	if _, ok := r.bindings[name]; !ok {
		return
	}
	delete(r.bindings, name)
	r.logger.Debugf("Removed event %q", name)
}

func (r *Registry) Activate(name string) {
	b, ok := r.bindings[name]
	if !ok || b.active {
		return
	}
	b.active = true
	r.logger.Debugf("Activating event %q", name)
}

func (r *Registry) Deactivate(name string) {
	b, ok := r.bindings[name]
	if !ok || !b.active {
		return
	}
	b.active = false
	r.logger.Debugf("Deactivating event %q", name)
}

// Fire calls the callback bound to name if it is active and reports whether
// it ran.
func (r *Registry) Fire(name string, args ...any) bool {
	b, ok := r.bindings[name]
	if !ok || !b.active {
		return false
	}
	r.logger.Debugf("Firing event %q", name)
	b.callback(args...)
	return true
}

func (r *Registry) Bound(name string) bool {
	_, ok := r.bindings[name]
	return ok
}

func (r *Registry) Active(name string) bool {
	b, ok := r.bindings[name]
	return ok && b.active
}

// Names lists bound names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
