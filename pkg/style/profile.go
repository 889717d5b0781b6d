package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ColorEnabled reports whether out should receive colored output: it must
// be a terminal with color support and NO_COLOR must be unset.
func ColorEnabled(out *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return false
	}
	return termenv.NewOutput(out).ColorProfile() != termenv.Ascii
}

// Configure switches every renderer to plain text when noColor is set and
// otherwise lets lipgloss detect the terminal.
func Configure(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
	pterm.EnableStyling()
}
