package raycekar

import (
	"context"
	"errors"
	"fmt"

	"github.com/raycekar/raycekar/rt/compile"
	"github.com/raycekar/raycekar/rt/core"
	"github.com/raycekar/raycekar/rt/events"
	"github.com/raycekar/raycekar/rt/logging"
	"github.com/raycekar/raycekar/rt/pick"
)

// System is a per-frame callback. Systems run before the scene is compiled,
// so anything they change is visible in the same frame.
type System func(app *App) error

type Stage struct {
	Name string
}

var (
	PreUpdate  = Stage{Name: "PreUpdate"}
	Update     = Stage{Name: "Update"}
	PostUpdate = Stage{Name: "PostUpdate"}
	// PostFrame systems run after the frame's events have fired.
	PostFrame = Stage{Name: "PostFrame"}
)

var defaultStages = []Stage{PreUpdate, Update, PostUpdate}

type queuedEvent struct {
	name string
	args []any
}

type App struct {
	config   Config
	scene    *core.Scene
	compiler *compile.Compiler
	picker   *pick.Picker
	events   *events.Registry
	backend  Backend
	logger   logging.Logger
	modules  []Module
	systems  map[string][]System

	pointerX, pointerY float64
	pending            []queuedEvent

	hover       pick.Pick
	hovering    bool
	frame       uint64
	shouldClose bool
}

func (app *App) Config() Config              { return app.config }
func (app *App) Scene() *core.Scene          { return app.scene }
func (app *App) Events() *events.Registry    { return app.events }
func (app *App) Compiler() *compile.Compiler { return app.compiler }

// Frame returns the number of completed frames.
func (app *App) Frame() uint64 { return app.frame }

// SetPointer records the device-space pointer position used for the next pick.
func (app *App) SetPointer(x, y float64) {
	app.pointerX, app.pointerY = x, y
}

func (app *App) Pointer() (float64, float64) {
	return app.pointerX, app.pointerY
}

// Queue defers an event until the current frame's contact buffer has been
// read back. Fire it directly through Events() to skip the pick.
func (app *App) Queue(name string, args ...any) {
	app.pending = append(app.pending, queuedEvent{name: name, args: args})
}

// Hover reports the object under the pointer as of the last frame.
func (app *App) Hover() (pick.Pick, bool) {
	return app.hover, app.hovering
}

func (app *App) UseSystem(stage Stage, system System) *App {
	app.systems[stage.Name] = append(app.systems[stage.Name], system)
	return app
}

// Close asks Run to return after the current frame.
func (app *App) Close() {
	app.shouldClose = true
}

func (app *App) ShouldClose() bool {
	return app.shouldClose
}

func (app *App) callSystems(stage Stage) error {
	for _, system := range app.systems[stage.Name] {
		if err := system(app); err != nil {
			return fmt.Errorf("%s system: %w", stage.Name, err)
		}
	}
	return nil
}

// RunFrame performs one frame: systems, compile, upload, render, contact
// readback, pick, then the queued events. Mutations made by event callbacks
// land in the next frame.
func (app *App) RunFrame(ctx context.Context) error {
	for _, stage := range defaultStages {
		if err := app.callSystems(stage); err != nil {
			return err
		}
	}

	bufs, err := app.compiler.Compile(app.scene)
	if err != nil {
		return err
	}
	if err := app.backend.Upload(bufs); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if err := app.backend.Render(ctx); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	contacts, err := app.backend.Contacts()
	if err != nil {
		return fmt.Errorf("contacts: %w", err)
	}

	app.hover, app.hovering, err = app.picker.Pick(app.pointerX, app.pointerY, contacts)
	if err != nil {
		if !errors.Is(err, pick.ErrOutOfBounds) {
			return err
		}
		app.hover, app.hovering = pick.Pick{}, false
	}

	app.fireQueued()
	app.frame++
	return app.callSystems(PostFrame)
}

// fireQueued fires the pending events in arrival order. Mouse events get the
// frame's pick appended to their arguments, nil when nothing was hit.
func (app *App) fireQueued() {
	pending := app.pending
	app.pending = nil
	for _, ev := range pending {
		args := ev.args
		if events.IsMouseEvent(ev.name) {
			var hit *pick.Pick
			if app.hovering {
				h := app.hover
				hit = &h
			}
			args = append(append(make([]any, 0, len(args)+1), args...), hit)
		}
		app.events.Fire(ev.name, args...)
	}
}

// Run renders frames until Close is called or ctx is done. Both are only
// checked between frames.
func (app *App) Run(ctx context.Context) error {
	app.logger.Infof("Running with %d objects at %dx%d", app.scene.Len(), app.config.Viewport.Width, app.config.Viewport.Height)
	for !app.shouldClose {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := app.RunFrame(ctx); err != nil {
			app.logger.Errorf("frame %d: %v", app.frame, err)
			return err
		}
	}
	app.logger.Infof("Closed after %d frames", app.frame)
	return nil
}
