package raycekar

import (
	"strings"
	"testing"

	"github.com/raycekar/raycekar/rt/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 512, cfg.Viewport.Width)
	assert.Equal(t, "rk", cfg.LogPrefix)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
viewport: {width: 320, height: 200}
debug: true
type_table: [sphere, camera]
`))
	require.NoError(t, err)
	assert.Equal(t, Viewport{Width: 320, Height: 200}, cfg.Viewport)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "rk", cfg.LogPrefix)

	table, err := cfg.Table()
	require.NoError(t, err)
	tag, err := table.Tag(core.KindCamera)
	require.NoError(t, err)
	assert.Equal(t, int32(1), tag)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero viewport": "viewport: {width: 0, height: 10}",
		"unknown kind":  "type_table: [sphere, teapot]",
		"unknown field": "fullscreen: true",
		"bad yaml":      "viewport: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}
