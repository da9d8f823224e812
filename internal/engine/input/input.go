// Package input tracks per-frame key state and detects press/release edges.
package input

// Key is a game action key, independent of the window backend.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyRestart
	KeyScreenshot
	KeyQuit

	keyCount
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyRestart:
		return "restart"
	case KeyScreenshot:
		return "screenshot"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Source reports whether a key is currently held.
type Source interface {
	KeyDown(k Key) bool
}

// Input holds the key state of the current and previous frame.
type Input struct {
	down [keyCount]bool
	prev [keyCount]bool
}

// New creates a new input tracker with every key released.
func New() *Input {
	return &Input{}
}

// Update samples every key from src. Call once per frame after polling events.
func (i *Input) Update(src Source) {
	i.prev = i.down
	for k := Key(0); k < keyCount; k++ {
		i.down[k] = src.KeyDown(k)
	}
}

// Held reports whether the key is down this frame.
func (i *Input) Held(k Key) bool {
	return i.down[k]
}

// Pressed reports whether the key went down this frame.
func (i *Input) Pressed(k Key) bool {
	return i.down[k] && !i.prev[k]
}
