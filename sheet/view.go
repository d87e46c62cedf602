package sheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m pickerModel) title() string {
	switch m.kind {
	case kindDate:
		return "Pick a date"
	case kindTime:
		return "Pick a time"
	default:
		return "Pick date & time"
	}
}

func (m pickerModel) previewLayout() string {
	switch m.kind {
	case kindDate:
		return "Mon, Jan 2, 2006"
	case kindTime:
		if m.use24h {
			return "15:04"
		}
		return "3:04 PM"
	default:
		return "Mon, Jan 2, 2006 3:04 PM"
	}
}

func (m pickerModel) renderSegment(seg segment, focused bool) string {
	var body string
	switch seg {
	case segYear:
		body = m.yearInput.View()
	case segMonth:
		body = m.monthInput.View()
	case segDay:
		body = m.dayInput.View()
	case segHour:
		body = m.hourInput.View()
	case segMinute:
		body = m.minuteInput.View()
	case segAmPm:
		if m.value.Hour() >= 12 {
			body = "PM"
		} else {
			body = "AM"
		}
	}
	st := lipgloss.NewStyle().Padding(0, 1).Background(m.theme.ControlBg).Foreground(m.theme.SurfaceFg)
	if focused {
		st = st.Background(m.theme.SelectedBg).Foreground(m.theme.SelectedFg).Bold(true)
	}
	return st.Render(body)
}

func (m pickerModel) renderSegments() string {
	parts := make([]string, 0, len(m.segs))
	for i, seg := range m.segs {
		parts = append(parts, m.renderSegment(seg, i == m.focus))
		// Visual joiners between date parts and between hour/minute.
		switch {
		case seg == segYear || seg == segMonth:
			parts = append(parts, "-")
		case seg == segDay && len(m.segs) > 3:
			parts = append(parts, " ")
		case seg == segHour:
			parts = append(parts, ":")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// View renders the sheet anchored to the bottom of the screen, in the
// spirit of a modal bottom sheet.
func (m pickerModel) View() string {
	width := m.width
	if width < 40 {
		width = 40
	}

	title := m.theme.StyleLabel().Render(m.title())
	preview := m.theme.StyleMuted().Render(m.value.Format(m.previewLayout()))
	help := m.theme.StyleMuted().Render("←/→ segment   ↑/↓ adjust   type digits   enter/esc close")

	inner := strings.Join([]string{title, "", m.renderSegments(), preview, "", help}, "\n")

	boxWidth := width - 4
	if max := ansi.StringWidth(help) + 4; boxWidth > max {
		boxWidth = max
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Accent).
		Padding(0, 2).
		Width(boxWidth).
		Render(inner)

	if m.height <= 0 {
		return box
	}
	return lipgloss.Place(width, m.height, lipgloss.Center, lipgloss.Bottom, box)
}
