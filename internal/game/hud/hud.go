// Package hud prints the running score and game-over notice to the terminal.
package hud

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

const divider = "----------------------------------------"

// HUD writes a single updating score line. Styling degrades to plain text
// when the writer is not a color terminal.
type HUD struct {
	out *termenv.Output
}

// New creates a HUD writing to w.
func New(w io.Writer) *HUD {
	return &HUD{out: termenv.NewOutput(w)}
}

// Start prints the separator that opens a run.
func (h *HUD) Start() {
	fmt.Fprintf(h.out, "\n\n%s\n", h.out.String(divider).Faint())
}

// Score rewrites the score line in place.
func (h *HUD) Score(score int) {
	label := h.out.String("Score:").Bold()
	fmt.Fprintf(h.out, "\r%s %d\t\t\t", label, score)
}

// GameOver prints the final score and the restart hint.
func (h *HUD) GameOver(score int) {
	label := h.out.String("Final score:").Bold().Foreground(h.out.Color("1"))
	fmt.Fprintf(h.out, "\r%s %d\t\t\t\n\n", label, score)
	fmt.Fprintln(h.out, "- Press SPACE to play again!")
	fmt.Fprintln(h.out, "- Close the window to exit.")
}
