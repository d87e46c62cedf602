package datefield

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// Fields must remain readable on both light and dark terminal backgrounds,
// so every color is a lipgloss.AdaptiveColor and "faint" styling is applied
// only on dark backgrounds (faint text on light terminals often becomes
// illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

// Theme carries the semantic colors a field (and the sheet pickers) render
// with. DefaultTheme works on light and dark terminals alike.
type Theme struct {
	Muted      lipgloss.TerminalColor // placeholder, help text
	SurfaceFg  lipgloss.TerminalColor // value text
	ControlBg  lipgloss.TerminalColor // input/control surfaces
	SelectedBg lipgloss.TerminalColor // focused segment highlight
	SelectedFg lipgloss.TerminalColor
	Accent     lipgloss.TerminalColor // label, focused borders
	Error      lipgloss.TerminalColor // validation error text
}

// DefaultTheme returns the stock adaptive palette.
func DefaultTheme() Theme {
	return Theme{
		Muted:      ac("240", "243"),
		SurfaceFg:  ac("235", "252"),
		ControlBg:  ac("252", "235"),
		SelectedBg: ac("#e9e9e9", "#262626"),
		SelectedFg: ac("235", "255"),
		Accent:     ac("27", "62"),
		Error:      ac("124", "167"),
	}
}

func (t Theme) StyleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(t.Muted))
}

func (t Theme) StyleLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

func (t Theme) StyleValue() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.SurfaceFg)
}

func (t Theme) StyleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

// ApplyColorProfilePreference sets Lip Gloss's color profile for interactive
// use. Only NO_COLOR is honored explicitly; otherwise the terminal's
// detected capabilities apply. (termenv.EnvColorProfile also respects
// CLICOLOR, which can accidentally disable colors in a TUI.)
func ApplyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
