package raycekar

import (
	"errors"

	"github.com/raycekar/raycekar/rt/compile"
	"github.com/raycekar/raycekar/rt/core"
	"github.com/raycekar/raycekar/rt/events"
	"github.com/raycekar/raycekar/rt/logging"
	"github.com/raycekar/raycekar/rt/pick"
)

var ErrNoBackend = errors.New("app has no backend")

// Module installs systems and event bindings on an App during Build.
type Module interface {
	Install(app *App)
}

type AppBuilder struct {
	config  Config
	scene   *core.Scene
	backend Backend
	logger  logging.Logger
	modules []Module
	systems []stagedSystem
}

type stagedSystem struct {
	stage  Stage
	system System
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{config: DefaultConfig()}
}

func (b *AppBuilder) WithConfig(cfg Config) *AppBuilder {
	b.config = cfg
	return b
}

func (b *AppBuilder) WithScene(scene *core.Scene) *AppBuilder {
	b.scene = scene
	return b
}

func (b *AppBuilder) WithBackend(backend Backend) *AppBuilder {
	b.backend = backend
	return b
}

// WithLogger overrides the logger built from the config.
func (b *AppBuilder) WithLogger(logger logging.Logger) *AppBuilder {
	b.logger = logger
	return b
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)
	return b
}

func (b *AppBuilder) UseSystem(stage Stage, system System) *AppBuilder {
	b.systems = append(b.systems, stagedSystem{stage: stage, system: system})
	return b
}

func (b *AppBuilder) Build() (*App, error) {
	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	if b.backend == nil {
		return nil, ErrNoBackend
	}
	table, err := b.config.Table()
	if err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = logging.NewDefaultLogger(b.config.LogPrefix, b.config.Debug)
	}
	scene := b.scene
	if scene == nil {
		scene = core.NewScene()
	}

	app := &App{
		config:   b.config,
		scene:    scene,
		compiler: compile.NewCompiler(table, logger),
		picker:   pick.NewPicker(scene),
		events:   events.NewRegistry(logger),
		backend:  b.backend,
		logger:   logger,
		modules:  b.modules,
		systems:  make(map[string][]System),
	}
	for _, s := range b.systems {
		app.UseSystem(s.stage, s.system)
	}
	for _, module := range b.modules {
		module.Install(app)
	}
	return app, nil
}
