package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the GLFW window input is read from. Its size is the viewport
// size; it is created non-resizable since the contact buffer is fixed.
type Window struct {
	glfw   *glfw.Window
	Width  int
	Height int
	Title  string
}

// OpenWindow initialises GLFW and creates a window without a client API.
// It locks the calling goroutine to its OS thread, which must be the main
// thread for the rest of the window's life.
func OpenWindow(width, height int, title string) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", width, height)
	}
	if title == "" {
		title = "raycekar"
	}
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	return &Window{glfw: win, Width: width, Height: height, Title: title}, nil
}

func (w *Window) Glfw() *glfw.Window { return w.glfw }

// PollEvents runs pending GLFW callbacks and reports whether the user asked
// to close the window.
func (w *Window) PollEvents() bool {
	glfw.PollEvents()
	return w.glfw.ShouldClose()
}

func (w *Window) Destroy() {
	w.glfw.Destroy()
	glfw.Terminate()
}
