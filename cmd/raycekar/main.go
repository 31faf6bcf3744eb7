package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/raycekar/raycekar"
	"github.com/raycekar/raycekar/platform"
	"github.com/raycekar/raycekar/rt/core"
	"github.com/raycekar/raycekar/rt/gpu"
	"github.com/raycekar/raycekar/rt/logging"
	"github.com/raycekar/raycekar/rt/pick"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	scenePath := flag.String("scene", "", "YAML scene file")
	shaderPath := flag.String("shader", "", "WGSL compute program writing the contact buffer")
	entryPoint := flag.String("entry", "main", "compute entry point")
	animate := flag.Bool("animate", false, "Bob spheres up and down")
	flag.Parse()

	if err := run(*configPath, *scenePath, *shaderPath, *entryPoint, *animate); err != nil {
		fmt.Fprintln(os.Stderr, "raycekar:", err)
		os.Exit(1)
	}
}

func run(configPath, scenePath, shaderPath, entryPoint string, animate bool) error {
	cfg := raycekar.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = raycekar.LoadConfigFile(configPath); err != nil {
			return err
		}
	}
	logger := logging.NewDefaultLogger(cfg.LogPrefix, cfg.Debug)
	defer logger.Sync()

	scene := core.NewScene()
	if scenePath != "" {
		var err error
		if scene, err = raycekar.LoadSceneFile(scenePath); err != nil {
			return err
		}
	}
	if shaderPath == "" {
		return fmt.Errorf("-shader is required")
	}
	wgsl, err := os.ReadFile(shaderPath)
	if err != nil {
		return err
	}

	win, err := platform.OpenWindow(cfg.Viewport.Width, cfg.Viewport.Height, "raycekar")
	if err != nil {
		return err
	}
	defer win.Destroy()

	dev, err := gpu.OpenDevice("raycekar device")
	if err != nil {
		return err
	}
	defer dev.Release()

	set, err := gpu.NewBufferSet(dev.Device, cfg.Viewport.Width, cfg.Viewport.Height, logger)
	if err != nil {
		return err
	}
	defer set.Release()

	program, err := gpu.NewComputeProgram(dev.Device, "contacts", string(wgsl), entryPoint)
	if err != nil {
		return err
	}
	defer program.Release()

	app, err := raycekar.NewAppBuilder().
		WithConfig(cfg).
		WithScene(scene).
		WithLogger(logger).
		WithBackend(&gpu.Backend{Set: set, Dispatch: program.Dispatch}).
		Build()
	if err != nil {
		return err
	}

	platform.NewInputRouter(app, logger).Attach(win.Glfw())
	app.UseSystem(raycekar.PreUpdate, func(app *raycekar.App) error {
		if win.PollEvents() {
			app.Close()
		}
		return nil
	})
	if animate {
		app.UseSystem(raycekar.Update, bobSpheres(scene))
	}

	if err := app.Events().Bind("key_ESCAPE", func(...any) { app.Close() }); err != nil {
		return err
	}
	if err := app.Events().Bind("mouse_LEFT", func(args ...any) {
		if hit, ok := args[len(args)-1].(*pick.Pick); ok && hit != nil {
			logger.Infof("Picked %s #%d (%s)", hit.Object.Kind(), hit.Index, hit.Handle)
		}
	}); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.Run(ctx)
}

// bobSpheres moves every sphere along z, a quarter period apart.
func bobSpheres(scene *core.Scene) raycekar.System {
	base := map[*core.Sphere]mgl32.Vec3{}
	return func(app *raycekar.App) error {
		n := 0
		scene.Each(func(_ int, obj core.Object) bool {
			s, ok := obj.(*core.Sphere)
			if !ok {
				return true
			}
			p, seen := base[s]
			if !seen {
				p = s.Position
				base[s] = p
			}
			phase := float64(mgl32.DegToRad(float32(app.Frame()) + float32(90*n)))
			s.Move(mgl32.Vec3{p[0], p[1], p[2] + 2*float32(math.Sin(phase))})
			n++
			return true
		})
		return nil
	}
}
