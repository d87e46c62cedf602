package datefield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// clearAffordance is the trailing glyph rendered on clearable fields.
const clearAffordance = "⊗"

// View renders the field as a labeled input-decoration surface:
//
//	Label
//	 formatted value or placeholder            ⊗
//	 validation error, when present
//
// The clear affordance appears only when the field is clearable, enabled,
// and holds a value. Disabled fields render muted throughout.
func (f *Field) View(width int) string {
	return f.ViewWithTheme(width, DefaultTheme())
}

// ViewWithTheme is View with an explicit palette.
func (f *Field) ViewWithTheme(width int, th Theme) string {
	if width < 12 {
		width = 12
	}

	labelStyle := th.StyleLabel()
	valueStyle := th.StyleValue()
	if !f.cfg.enabled {
		labelStyle = th.StyleMuted()
		valueStyle = th.StyleMuted()
	}

	var body string
	if f.state.value != nil {
		body = valueStyle.Render(f.FormattedValue())
	} else {
		body = th.StyleMuted().Render(f.cfg.placeholder)
	}

	valueLine := body
	if f.showClear() {
		gap := width - lipgloss.Width(body) - lipgloss.Width(clearAffordance) - 2
		if gap < 1 {
			gap = 1
		}
		valueLine = body + strings.Repeat(" ", gap) + th.StyleMuted().Render(clearAffordance)
	}
	valueLine = lipgloss.NewStyle().
		Background(th.ControlBg).
		Padding(0, 1).
		Width(width).
		Render(valueLine)

	lines := []string{labelStyle.Render(f.cfg.label), valueLine}
	if f.state.err != nil {
		lines = append(lines, th.StyleError().Render(f.state.err.Error()))
	}
	return strings.Join(lines, "\n")
}

// showClear reports whether the clear affordance is rendered. Disabled
// fields never show it (the clear path is also inert; see Clear).
func (f *Field) showClear() bool {
	return f.cfg.clearable && f.cfg.enabled && f.state.value != nil
}
