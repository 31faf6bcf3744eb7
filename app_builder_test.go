package raycekar

import (
	"testing"
	"time"

	"github.com/raycekar/raycekar/rt/pick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App) {
	m.installed = true
}

func TestAppBuilder_Defaults(t *testing.T) {
	app, err := NewAppBuilder().WithBackend(&fakeBackend{width: 1, height: 1}).Build()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), app.Config())
	assert.Equal(t, 0, app.Scene().Len())
	assert.NotNil(t, app.Logger())
	assert.Equal(t, 5, app.Compiler().Table().Len())
}

func TestAppBuilder_RequiresBackend(t *testing.T) {
	_, err := NewAppBuilder().Build()
	assert.ErrorIs(t, err, ErrNoBackend)
}

func TestAppBuilder_RejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TypeTable = []string{"sphere", "sphere"}
	_, err := NewAppBuilder().WithConfig(cfg).WithBackend(&fakeBackend{}).Build()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestAppBuilder_UseModule(t *testing.T) {
	m1, m2 := &MockModule{}, &MockModule{}
	_, err := NewAppBuilder().
		WithBackend(&fakeBackend{width: 1, height: 1}).
		UseModule(m1, m2).
		Build()
	require.NoError(t, err)
	assert.True(t, m1.installed)
	assert.True(t, m2.installed)
}

func TestTimeModule(t *testing.T) {
	start := time.Unix(100, 0)
	now := start
	clock := &Time{}

	backend := &fakeBackend{width: 1, height: 1, hit: pick.NoHit}
	app, err := NewAppBuilder().
		WithBackend(backend).
		UseModule(&TimeModule{Clock: clock, Now: func() time.Time { return now }}).
		Build()
	require.NoError(t, err)
	assert.Equal(t, start, clock.Time)

	now = start.Add(16 * time.Millisecond)
	require.NoError(t, app.RunFrame(t.Context()))
	assert.Equal(t, 16*time.Millisecond, clock.Dt)
	assert.Equal(t, now, clock.Time)
}

func TestTimeModule_AllocatesClock(t *testing.T) {
	start := time.Unix(100, 0)
	now := start
	mod := &TimeModule{Now: func() time.Time { return now }}

	backend := &fakeBackend{width: 1, height: 1, hit: pick.NoHit}
	app, err := NewAppBuilder().WithBackend(backend).UseModule(mod).Build()
	require.NoError(t, err)
	require.NotNil(t, mod.Clock)
	assert.Equal(t, start, mod.Clock.Time)

	now = start.Add(time.Second)
	require.NoError(t, app.RunFrame(t.Context()))
	assert.Equal(t, time.Second, mod.Clock.Dt)
}
