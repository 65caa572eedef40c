package display

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the lipgloss styles used when rendering matches.
type Styles struct {
	Path    lipgloss.Style
	Count   lipgloss.Style
	LineNum lipgloss.Style
	Capture lipgloss.Style
}

// NewStyles returns the default color styles: bright green paths, yellow
// counts and line numbers, captures black on yellow.
func NewStyles() Styles {
	return Styles{
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Count:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		LineNum: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Capture: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
	}
}

// NoStyles returns styles that render text unchanged.
func NoStyles() Styles {
	return Styles{
		Path:    lipgloss.NewStyle(),
		Count:   lipgloss.NewStyle(),
		LineNum: lipgloss.NewStyle(),
		Capture: lipgloss.NewStyle(),
	}
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
