// Package sheet implements the continuous picker family as bubbletea
// bottom-sheet overlays: the surface stays open while every accepted change
// is reported immediately through the onChange callback. Dismissing the
// sheet keeps whatever was already reported; there is no cancel semantics.
package sheet

import (
	"strconv"
	"strings"
	"time"

	"datefield"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerModel struct {
	kind       kind
	use24h     bool
	minuteStep int
	first      time.Time
	last       time.Time

	value    time.Time
	onChange func(time.Time)

	segs  []segment
	focus int

	yearInput   textinput.Model
	monthInput  textinput.Model
	dayInput    textinput.Model
	hourInput   textinput.Model
	minuteInput textinput.Model

	width  int
	height int
	theme  datefield.Theme
}

func newSegmentInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = limit
	in.Prompt = ""
	return in
}

func newPickerModel(k kind, initial, first, last time.Time, use24h bool, minuteStep int, th datefield.Theme, onChange func(time.Time)) pickerModel {
	if k == kindDateTime {
		// The combined sheet always displays 12-hour.
		use24h = false
	}
	if minuteStep < 1 {
		minuteStep = 1
	}
	if onChange == nil {
		onChange = func(time.Time) {}
	}
	if k != kindTime {
		initial = clampDate(initial, first, last)
	}

	m := pickerModel{
		kind:        k,
		use24h:      use24h,
		minuteStep:  minuteStep,
		first:       first,
		last:        last,
		value:       initial,
		onChange:    onChange,
		segs:        segmentsFor(k, use24h),
		yearInput:   newSegmentInput("YYYY", 4),
		monthInput:  newSegmentInput("MM", 2),
		dayInput:    newSegmentInput("DD", 2),
		hourInput:   newSegmentInput("HH", 2),
		minuteInput: newSegmentInput("MM", 2),
		theme:       th,
	}
	m.syncInputs()
	m.applySegmentFocus()
	return m
}

func (m pickerModel) Init() tea.Cmd { return textinput.Blink }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "ctrl+g", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.focus = (m.focus + 1) % len(m.segs)
			m.applySegmentFocus()
			return m, nil
		case "shift+tab", "left", "h":
			m.focus = (m.focus - 1 + len(m.segs)) % len(m.segs)
			m.applySegmentFocus()
			return m, nil
		case "up", "k":
			m.bumpFocused(1)
			return m, nil
		case "down", "j":
			m.bumpFocused(-1)
			return m, nil
		case " ", "space":
			if m.focusedSegment() == segAmPm {
				m.bumpFocused(1)
			}
			return m, nil
		}

		// Route anything else to the focused input and re-parse.
		var cmd tea.Cmd
		switch m.focusedSegment() {
		case segYear:
			m.yearInput, cmd = m.yearInput.Update(msg)
		case segMonth:
			m.monthInput, cmd = m.monthInput.Update(msg)
		case segDay:
			m.dayInput, cmd = m.dayInput.Update(msg)
		case segHour:
			m.hourInput, cmd = m.hourInput.Update(msg)
		case segMinute:
			m.minuteInput, cmd = m.minuteInput.Update(msg)
		default:
			return m, nil
		}
		m.applyTypedInputs()
		return m, cmd
	}
	return m, nil
}

func (m *pickerModel) focusedSegment() segment { return m.segs[m.focus] }

func (m *pickerModel) bumpFocused(delta int) {
	next := bump(m.value, m.focusedSegment(), delta, m.minuteStep)
	if m.kind != kindTime {
		next = clampDate(next, m.first, m.last)
	}
	if next.Equal(m.value) {
		return
	}
	m.setValue(next)
}

// setValue commits one change: the sheet reports it immediately, no
// batching.
func (m *pickerModel) setValue(t time.Time) {
	m.value = t
	m.syncInputs()
	m.onChange(t)
}

// applyTypedInputs rebuilds the value from the segment inputs after a typed
// edit. Invalid or partial input leaves the value untouched; a valid edit is
// reported like any other change, without rewriting the inputs mid-typing.
func (m *pickerModel) applyTypedInputs() {
	next, ok := m.parseInputs()
	if !ok {
		return
	}
	if m.kind != kindTime {
		next = clampDate(next, m.first, m.last)
	}
	if next.Equal(m.value) {
		return
	}
	m.value = next
	m.onChange(next)
}

func (m *pickerModel) parseInputs() (time.Time, bool) {
	y, mo, d := m.value.Year(), m.value.Month(), m.value.Day()
	h, mi := m.value.Hour(), m.value.Minute()

	if m.kind != kindTime {
		ys := strings.TrimSpace(m.yearInput.Value())
		if len(ys) != 4 {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(ys)
		if err != nil {
			return time.Time{}, false
		}
		y = n
		if n, ok := parseSegInt(m.monthInput.Value(), 1, 12); ok {
			mo = time.Month(n)
		} else {
			return time.Time{}, false
		}
		if n, ok := parseSegInt(m.dayInput.Value(), 1, daysInMonth(y, mo)); ok {
			d = n
		} else {
			return time.Time{}, false
		}
	}
	if m.kind != kindDate {
		minHour, maxHour := 0, 23
		if m.hasAmPm() {
			minHour, maxHour = 1, 12
		}
		n, ok := parseSegInt(m.hourInput.Value(), minHour, maxHour)
		if !ok {
			return time.Time{}, false
		}
		if m.hasAmPm() {
			n = n % 12
			if m.value.Hour() >= 12 {
				n += 12
			}
		}
		h = n
		if n, ok := parseSegInt(m.minuteInput.Value(), 0, 59); ok {
			mi = n
		} else {
			return time.Time{}, false
		}
	}
	if m.kind == kindDate {
		h, mi = 0, 0
	}
	return time.Date(y, mo, d, h, mi, 0, 0, m.value.Location()), true
}

func parseSegInt(s string, min, max int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}

func (m *pickerModel) hasAmPm() bool {
	for _, s := range m.segs {
		if s == segAmPm {
			return true
		}
	}
	return false
}

func (m *pickerModel) displayHour() int {
	h := m.value.Hour()
	if !m.hasAmPm() {
		return h
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return h
}

func (m *pickerModel) syncInputs() {
	m.yearInput.SetValue(fmtYear(m.value.Year()))
	m.monthInput.SetValue(fmt2(int(m.value.Month())))
	m.dayInput.SetValue(fmt2(m.value.Day()))
	m.hourInput.SetValue(fmt2(m.displayHour()))
	m.minuteInput.SetValue(fmt2(m.value.Minute()))
}

func (m *pickerModel) applySegmentFocus() {
	m.yearInput.Blur()
	m.monthInput.Blur()
	m.dayInput.Blur()
	m.hourInput.Blur()
	m.minuteInput.Blur()
	switch m.focusedSegment() {
	case segYear:
		m.yearInput.Focus()
	case segMonth:
		m.monthInput.Focus()
	case segDay:
		m.dayInput.Focus()
	case segHour:
		m.hourInput.Focus()
	case segMinute:
		m.minuteInput.Focus()
	case segAmPm:
		// no input focus
	}
}

func fmt2(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 99 {
		n = 99
	}
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func fmtYear(y int) string {
	if y < 0 {
		y = 0
	}
	s := strconv.Itoa(y)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
