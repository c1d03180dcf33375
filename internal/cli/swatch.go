package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/threadtone/threadtone/internal/colour"
)

// swatch renders a small truecolor block for the given colour when stdout
// is an interactive terminal; otherwise it degrades to an empty cell so
// piped output stays clean.
func swatch(rgb colour.RGB, wantColour bool) string {
	if !wantColour || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", rgb.R, rgb.G, rgb.B)
}
