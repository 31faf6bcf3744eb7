package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/raycekar/raycekar"
	"github.com/raycekar/raycekar/rt/compile"
	"github.com/raycekar/raycekar/rt/core"
	"github.com/raycekar/raycekar/rt/logging"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	scenePath := flag.String("scene", "", "YAML scene file")
	outDir := flag.String("out", "", "directory to write types.bin, ints.bin and floats.bin into")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if err := run(*configPath, *scenePath, *outDir, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "scenedump:", err)
		os.Exit(1)
	}
}

func run(configPath, scenePath, outDir string, debug bool) error {
	cfg := raycekar.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = raycekar.LoadConfigFile(configPath); err != nil {
			return err
		}
	}
	logger := logging.NewDefaultLogger(cfg.LogPrefix, cfg.Debug || debug)
	defer logger.Sync()

	if scenePath == "" {
		return fmt.Errorf("-scene is required")
	}
	scene, err := raycekar.LoadSceneFile(scenePath)
	if err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}
	bufs, err := compile.NewCompiler(table, logger).Compile(scene)
	if err != nil {
		return err
	}
	logger.Infof("Compiled %d objects: %d type, %d int, %d float bytes",
		bufs.Count, len(bufs.Types), len(bufs.Ints), len(bufs.Floats))

	if outDir == "" {
		return summarize(os.Stdout, scene, table, bufs)
	}
	return writeStreams(outDir, bufs)
}

func writeStreams(dir string, bufs compile.Buffers) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := map[string][]byte{
		"types.bin":  bufs.Types,
		"ints.bin":   bufs.Ints,
		"floats.bin": bufs.Floats,
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// summarize prints one line per object with the fields it contributed.
func summarize(w io.Writer, scene *core.Scene, table compile.TypeTable, bufs compile.Buffers) error {
	ints, floats := bufs.IntFields(), bufs.FloatFields()
	tags := bufs.Tags()
	var err error
	scene.Each(func(i int, obj core.Object) bool {
		k := obj.Kind()
		ni, nf := k.IntFields(), k.FloatFields()
		h, _ := scene.Handle(i)
		_, err = fmt.Fprintf(w, "%3d %-12s tag=%d id=%s ints=%v floats=%v\n",
			i, k, tags[i], h, ints[:ni], floats[:nf])
		ints, floats = ints[ni:], floats[nf:]
		return err == nil
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "type table: %v\n", table.Kinds())
	return err
}
