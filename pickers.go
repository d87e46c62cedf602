package datefield

import "time"

// DialogPickers is the single-shot picker family: each call blocks until the
// user accepts a value or dismisses the dialog. Dismissal reports ok=false
// with a nil error; it is a defined no-op outcome, not a failure.
type DialogPickers interface {
	// PickDate asks for a calendar date within [first, last], seeded with
	// initial. Only the returned value's date part is meaningful.
	PickDate(initial, first, last time.Time) (picked time.Time, ok bool, err error)

	// PickTime asks for an hour and minute, seeded with initial. Only the
	// returned value's clock part is meaningful.
	PickTime(initial time.Time) (picked time.Time, ok bool, err error)
}

// SheetPickers is the continuous picker family: the surface stays open and
// reports every intermediate change through onChange, one invocation per
// change, no batching. Dismissing the surface ends the call; values already
// reported stand.
type SheetPickers interface {
	ShowDatePicker(initial, first, last time.Time, onChange func(time.Time)) error
	ShowTimePicker(initial time.Time, use24h bool, minuteStep int, onChange func(time.Time)) error
	ShowDateTimePicker(initial time.Time, minuteStep int, onChange func(time.Time)) error
}

// Pickers is the capability set a host platform injects into a field.
// Dialogs are preferred when both families are present. Construction fails
// when neither is set.
type Pickers struct {
	Dialogs DialogPickers
	Sheets  SheetPickers
}
