// Package window creates the OS window with an OpenGL 4.1 core context and
// polls keyboard state. Two backends are available: SDL2 and GLFW.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/laneracer/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Context version requested from every backend.
const (
	glMajor = 4
	glMinor = 1
)

// Config holds window configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	VSync   bool
	Backend string
}

// Window is an open window with a current GL context.
type Window interface {
	input.Source

	// PollEvents pumps the OS event queue. Call once per frame.
	PollEvents()
	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (int, int)
	// Close destroys the window and shuts the backend down.
	Close()
}

// New opens a window with the configured backend.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case BackendSDL, "":
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
