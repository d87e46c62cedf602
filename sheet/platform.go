package sheet

import (
	"time"

	"datefield"

	tea "github.com/charmbracelet/bubbletea"
)

// Platform runs bottom-sheet pickers as bubbletea programs. The zero value
// is usable; Theme and ProgramOptions (e.g. tea.WithInput/WithOutput for
// tests) are optional.
type Platform struct {
	Theme datefield.Theme

	// ProgramOptions are passed to every picker program.
	ProgramOptions []tea.ProgramOption
}

var _ datefield.SheetPickers = (*Platform)(nil)

func (p *Platform) theme() datefield.Theme {
	if p.Theme.Muted == nil {
		return datefield.DefaultTheme()
	}
	return p.Theme
}

func (p *Platform) run(m pickerModel) error {
	_, err := tea.NewProgram(m, p.ProgramOptions...).Run()
	return err
}

// ShowDatePicker opens a continuous date sheet bounded by [first, last].
func (p *Platform) ShowDatePicker(initial, first, last time.Time, onChange func(time.Time)) error {
	return p.run(newPickerModel(kindDate, initial, first, last, false, 1, p.theme(), onChange))
}

// ShowTimePicker opens a continuous time sheet.
func (p *Platform) ShowTimePicker(initial time.Time, use24h bool, minuteStep int, onChange func(time.Time)) error {
	return p.run(newPickerModel(kindTime, initial, time.Time{}, time.Time{}, use24h, minuteStep, p.theme(), onChange))
}

// ShowDateTimePicker opens a continuous combined sheet (12-hour display).
func (p *Platform) ShowDateTimePicker(initial time.Time, minuteStep int, onChange func(time.Time)) error {
	first := time.Date(1, time.January, 1, 0, 0, 0, 0, initial.Location())
	last := time.Date(9999, time.December, 31, 0, 0, 0, 0, initial.Location())
	return p.run(newPickerModel(kindDateTime, initial, first, last, false, minuteStep, p.theme(), onChange))
}
