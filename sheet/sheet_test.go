package sheet

import (
	"testing"
	"time"

	"datefield"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(k kind, initial time.Time, use24h bool, onChange func(time.Time)) pickerModel {
	first := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
	return newPickerModel(k, initial, first, last, use24h, 1, datefield.DefaultTheme(), onChange)
}

func TestSheet_BumpEmitsOneChangePerKeypress(t *testing.T) {
	var got []time.Time
	initial := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	m := newTestModel(kindDate, initial, false, func(v time.Time) { got = append(got, v) })

	// Focus day (year -> month -> day), then bump twice.
	var mAny tea.Model = m
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes('k'),
		keyRunes('k'),
	} {
		mAny, _ = mAny.(pickerModel).Update(msg)
	}

	want := []time.Time{
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expected one onChange per bump, in order (-want +got):\n%s", diff)
	}
}

func TestSheet_BumpClampsToBounds_NoEmitWhenPinned(t *testing.T) {
	var got []time.Time
	first := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	m := newPickerModel(kindDate, last, first, last, false, 1, datefield.DefaultTheme(), func(v time.Time) { got = append(got, v) })

	// Focus day, bump up: already at the last selectable date, so the value
	// stays pinned and nothing is reported.
	var mAny tea.Model = m
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes('k'),
	} {
		mAny, _ = mAny.(pickerModel).Update(msg)
	}

	if len(got) != 0 {
		t.Fatalf("expected no onChange when clamped at bound, got %v", got)
	}
}

func TestSheet_TypedDigitsEmitValidEdits(t *testing.T) {
	var got []time.Time
	initial := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	m := newTestModel(kindDate, initial, false, func(v time.Time) { got = append(got, v) })

	// Clear the year input and type a full year; partial input must not
	// commit anything.
	m.yearInput.SetValue("")
	var mAny tea.Model = m
	for _, r := range "2031" {
		mAny, _ = mAny.(pickerModel).Update(keyRunes(r))
	}

	want := []time.Time{time.Date(2031, time.June, 15, 0, 0, 0, 0, time.UTC)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expected a single commit once the year is complete (-want +got):\n%s", diff)
	}
}

func TestSheet_TimeMode_AmPmToggleEmits(t *testing.T) {
	var got []time.Time
	initial := time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)
	m := newTestModel(kindTime, initial, false, func(v time.Time) { got = append(got, v) })

	// Focus AM/PM (hour -> minute -> am/pm) and toggle.
	var mAny tea.Model = m
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes('k'),
	} {
		mAny, _ = mAny.(pickerModel).Update(msg)
	}

	want := []time.Time{time.Date(2025, time.June, 15, 21, 30, 0, 0, time.UTC)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expected AM/PM toggle commit (-want +got):\n%s", diff)
	}

	final := mAny.(pickerModel)
	if final.displayHour() != 9 {
		t.Fatalf("expected 12h display hour 9 (21:30), got %d", final.displayHour())
	}
}

func TestSheet_EnterAndEscQuit(t *testing.T) {
	m := newTestModel(kindDate, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), false, nil)
	for _, k := range []tea.KeyType{tea.KeyEnter, tea.KeyEsc} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("expected quit command for %v", k)
		}
	}
}

func TestSheet_FocusWraps(t *testing.T) {
	m := newTestModel(kindDate, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), false, nil)

	var mAny tea.Model = m
	for i := 0; i < 3; i++ {
		mAny, _ = mAny.(pickerModel).Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	if got := mAny.(pickerModel).focus; got != 0 {
		t.Fatalf("expected focus to wrap back to the first segment, got %d", got)
	}

	mAny, _ = mAny.(pickerModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := mAny.(pickerModel).focus; got != 2 {
		t.Fatalf("expected shift+tab to wrap to the last segment, got %d", got)
	}
}

func TestSheet_CombinedKindForces12HourDisplay(t *testing.T) {
	m := newPickerModel(kindDateTime,
		time.Date(2025, time.June, 15, 21, 30, 0, 0, time.UTC),
		time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC),
		true, // requested 24h is overridden
		1, datefield.DefaultTheme(), nil)

	if !m.hasAmPm() {
		t.Fatalf("expected combined sheet to carry an AM/PM segment")
	}
	if m.displayHour() != 9 {
		t.Fatalf("expected 12h display hour 9 for 21:30, got %d", m.displayHour())
	}
}
