// Package theme colors the folder picker and command output after the user's
// terminal. Colors are read from Alacritty, Kitty or Foot configuration, with
// FILE_ORGANIZER_* environment overrides and an amber-on-dark fallback.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the color scheme
type Palette struct {
	BG       string // background
	FG       string // foreground (primary text)
	Muted    string // hints, secondary info
	Accent   string // directories, success
	AccentBg string // selection background
	Error    string // error/warning colors
}

// DefaultPalette returns the fallback amber-on-dark theme
func DefaultPalette() Palette {
	return Palette{
		BG:       "#0a0a0a",
		FG:       "#d4a017",
		Muted:    "#6b6b4f",
		Accent:   "#8bc34a",
		AccentBg: "#1a1a14",
		Error:    "#ff6b6b",
	}
}

// Styles holds the lipgloss styles derived from a palette
type Styles struct {
	Title     lipgloss.Style
	Path      lipgloss.Style
	Cursor    lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Selected  lipgloss.Style
	Disabled  lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	Panel     lipgloss.Style
}

// NewStyles creates styles from a palette
func NewStyles(p Palette) Styles {
	fg := lipgloss.Color(p.FG)
	muted := lipgloss.Color(p.Muted)

	return Styles{
		Title:     lipgloss.NewStyle().Foreground(fg).Bold(true),
		Path:      lipgloss.NewStyle().Foreground(muted).Italic(true),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true),
		Directory: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		File:      lipgloss.NewStyle().Foreground(fg),
		Selected: lipgloss.NewStyle().
			Foreground(fg).
			Background(lipgloss.Color(p.AccentBg)).
			Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(muted).Faint(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)),
		HelpKey:  lipgloss.NewStyle().Foreground(muted),
		HelpDesc: lipgloss.NewStyle().Foreground(fg),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
	}
}

// Load detects the palette and builds styles from it
func Load() (Palette, Styles) {
	p := Detect()
	return p, NewStyles(p)
}
