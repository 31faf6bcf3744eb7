package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindActivatesAndFires(t *testing.T) {
	r := NewRegistry(nil)
	var got []any
	require.NoError(t, r.Bind("key_ESCAPE", func(args ...any) { got = args }))

	assert.True(t, r.Bound("key_ESCAPE"))
	assert.True(t, r.Active("key_ESCAPE"))
	assert.True(t, r.Fire("key_ESCAPE", 1, "x"))
	assert.Equal(t, []any{1, "x"}, got)
}

func TestActivateIsIdempotent(t *testing.T) {
	r := NewRegistry(nil)
	calls := 0
	require.NoError(t, r.Bind("mouse_LEFT", func(...any) { calls++ }))

	r.Activate("mouse_LEFT")
	r.Activate("mouse_LEFT")
	assert.Equal(t, []string{"mouse_LEFT"}, r.Names())

	r.Fire("mouse_LEFT")
	assert.Equal(t, 1, calls)
}

func TestDeactivate(t *testing.T) {
	r := NewRegistry(nil)
	calls := 0
	require.NoError(t, r.Bind("key_LEFT", func(...any) { calls++ }))

	r.Deactivate("key_LEFT")
	r.Deactivate("key_LEFT")
	assert.False(t, r.Active("key_LEFT"))
	assert.True(t, r.Bound("key_LEFT"))
	assert.False(t, r.Fire("key_LEFT"))
	assert.Equal(t, 0, calls)

	r.Activate("key_LEFT")
	assert.True(t, r.Fire("key_LEFT"))
	assert.Equal(t, 1, calls)
}

func TestRebindRequiresUnbind(t *testing.T) {
	r := NewRegistry(nil)
	first, second := 0, 0
	require.NoError(t, r.Bind("key_A", func(...any) { first++ }))
	assert.ErrorIs(t, r.Bind("key_A", func(...any) { second++ }), ErrAlreadyBound)

	r.Fire("key_A")
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)

	r.Unbind("key_A")
	assert.False(t, r.Bound("key_A"))
	require.NoError(t, r.Bind("key_A", func(...any) { second++ }))
	r.Fire("key_A")
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestUnknownNamesAreIgnored(t *testing.T) {
	r := NewRegistry(nil)
	assert.False(t, r.Fire("key_NOPE"))
	r.Activate("key_NOPE")
	r.Deactivate("key_NOPE")
	r.Unbind("key_NOPE")
	assert.False(t, r.Bound("key_NOPE"))
	assert.Empty(t, r.Names())
}

func TestBindNilCallback(t *testing.T) {
	r := NewRegistry(nil)
	assert.Error(t, r.Bind("key_A", nil))
	assert.False(t, r.Bound("key_A"))
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, "key_ESCAPE", KeyEvent("ESCAPE"))
	assert.Equal(t, "mouse_LEFT", MouseEvent("LEFT"))
	assert.True(t, IsMouseEvent(MouseEvent("RIGHT")))
	assert.False(t, IsMouseEvent(KeyEvent("M")))
}
