package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette for CLI output.
type Theme struct {
	Success lipgloss.Color // files already clean, summary ticks
	Error   lipgloss.Color // failures, files needing formatting
	Warning lipgloss.Color // warning diagnostics
	Info    lipgloss.Color // info diagnostics
	Muted   lipgloss.Color // line numbers, snippets
	Text    lipgloss.Color // primary text
}

// DefaultTheme returns the default color theme (gruvbox).
func DefaultTheme() *Theme {
	return &Theme{
		Success: lipgloss.Color("#b8bb26"), // gruvbox green
		Error:   lipgloss.Color("#fb4934"), // gruvbox red
		Warning: lipgloss.Color("#fabd2f"), // gruvbox yellow
		Info:    lipgloss.Color("#83a598"), // gruvbox aqua
		Muted:   lipgloss.Color("#928374"), // gruvbox gray
		Text:    lipgloss.Color("#ebdbb2"), // gruvbox foreground
	}
}

// Styles returns styled text helpers bound to a renderer. The renderer
// probes the output stream, so colors degrade automatically when stdout or
// stderr is not a terminal.
type Styles struct {
	renderer *lipgloss.Renderer

	Success    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Info       lipgloss.Style
	Muted      lipgloss.Style
	Bold       lipgloss.Style
	Path       lipgloss.Style
	DiffAdd    lipgloss.Style
	DiffRemove lipgloss.Style
	DiffHeader lipgloss.Style
}

// NewStyles creates a new Styles instance for the given output.
func NewStyles(output *os.File) *Styles {
	return NewStylesWithTheme(output, DefaultTheme())
}

// NewStylesWithTheme creates styles with a specific theme.
func NewStylesWithTheme(output *os.File, theme *Theme) *Styles {
	r := lipgloss.NewRenderer(output)

	return &Styles{
		renderer: r,

		Success: r.NewStyle().Foreground(theme.Success),
		Error:   r.NewStyle().Foreground(theme.Error),
		Warning: r.NewStyle().Foreground(theme.Warning),
		Info:    r.NewStyle().Foreground(theme.Info),
		Muted:   r.NewStyle().Foreground(theme.Muted),
		Bold:    r.NewStyle().Bold(true),
		Path:    r.NewStyle().Bold(true).Foreground(theme.Info),

		DiffAdd:    r.NewStyle().Foreground(theme.Success),
		DiffRemove: r.NewStyle().Foreground(theme.Error),
		DiffHeader: r.NewStyle().Foreground(theme.Muted),
	}
}

// NoColor forces plain output regardless of terminal support. Used by the
// --no-color flag.
func (s *Styles) NoColor() *Styles {
	s.renderer.SetColorProfile(termenv.Ascii)
	return s
}
