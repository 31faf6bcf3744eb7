package raycekar

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/raycekar/raycekar/rt/compile"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the fixed configuration both sides of the backend boundary
// agree on.
type Config struct {
	Viewport  Viewport `yaml:"viewport"`
	Debug     bool     `yaml:"debug"`
	LogPrefix string   `yaml:"log_prefix"`
	// TypeTable overrides the kind order of the type stream, by kind name.
	TypeTable []string `yaml:"type_table,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Viewport:  Viewport{Width: 512, Height: 512},
		LogPrefix: "rk",
	}
}

// LoadConfig decodes YAML on top of DefaultConfig. An empty document yields
// the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := c.Table(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Table returns the configured type table, or the default one.
func (c Config) Table() (compile.TypeTable, error) {
	if len(c.TypeTable) == 0 {
		return compile.DefaultTypeTable, nil
	}
	return compile.ParseTypeTable(c.TypeTable)
}
