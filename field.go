// Package datefield implements a date/time picker form field for terminal
// UIs. The field itself holds no picker logic: it maps its configuration
// (date-only, time-only, clearable, picker family) to one of the injected
// picker capabilities and pushes accepted results into a form-owned state
// cell.
package datefield

import "time"

// Field is a configuration-driven date/time form field. It is stateless
// beyond the State cell it references; all behavior is decided by the
// resolved configuration and the injected pickers.
type Field struct {
	cfg     resolvedConfig
	state   *State
	pickers Pickers
}

// New builds a field. state may be nil, in which case the field creates its
// own cell seeded with cfg.InitialValue; a non-nil state is used as-is (the
// host owns its seeding). Construction fails on conflicting mode flags, an
// inverted date range, or an empty picker set.
func New(cfg Config, state *State, pickers Pickers) (*Field, error) {
	rc, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	if pickers.Dialogs == nil && pickers.Sheets == nil {
		return nil, ErrNoPickers
	}
	if state == nil {
		state = NewState(rc.initialValue)
	}
	return &Field{cfg: rc, state: state, pickers: pickers}, nil
}

// Value returns the current value, nil when unset.
func (f *Field) Value() *time.Time { return f.state.value }

// Err returns the current validation error, if any.
func (f *Field) Err() error { return f.state.err }

// Label returns the resolved label text.
func (f *Field) Label() string { return f.cfg.label }

// Enabled reports whether the field reacts to activation and clearing.
func (f *Field) Enabled() bool { return f.cfg.enabled }

// FormattedValue renders the current value with the resolved layout, or ""
// when the value is nil.
func (f *Field) FormattedValue() string {
	if f.state.value == nil {
		return ""
	}
	return f.state.value.Format(f.cfg.layout)
}

// SetValue is the single state-mutation entry point. It stores v and, when
// AutoValidate is configured, immediately re-runs the validator and stores
// its result.
func (f *Field) SetValue(v *time.Time) {
	f.state.value = v
	if f.cfg.autoValidate {
		f.state.err = f.cfg.validate(v)
	}
}

// Clear sets the value to nil without opening any picker. It is a no-op
// unless the field is clearable and enabled.
func (f *Field) Clear() {
	if !f.cfg.enabled || !f.cfg.clearable {
		return
	}
	f.SetValue(nil)
}

// Validate runs the validator against the current value unconditionally,
// stores the result for rendering, and returns it. Host form layers call
// this on submission.
func (f *Field) Validate() error {
	f.state.err = f.cfg.validate(f.state.value)
	return f.state.err
}

// Save invokes the configured save callback with the current value.
func (f *Field) Save() { f.cfg.onSave(f.state.value) }

// Activate runs the picker flow selected by the mode flags. Disabled fields
// ignore activation entirely; no picker capability is invoked. A cancelled
// single-shot dialog changes no state and returns nil.
func (f *Field) Activate() error {
	if !f.cfg.enabled {
		return nil
	}
	switch {
	case f.cfg.dateOnly:
		return f.activateDate()
	case f.cfg.timeOnly:
		return f.activateTime()
	default:
		return f.activateDateTime()
	}
}

func (f *Field) activateDate() error {
	if d := f.pickers.Dialogs; d != nil {
		picked, ok, err := d.PickDate(f.dateSeed(), f.cfg.firstDate, f.cfg.lastDate)
		if err != nil || !ok {
			return err
		}
		f.commit(midnight(picked))
		return nil
	}
	return f.pickers.Sheets.ShowDatePicker(f.dateSeed(), f.cfg.firstDate, f.cfg.lastDate, f.commit)
}

func (f *Field) activateTime() error {
	if d := f.pickers.Dialogs; d != nil {
		picked, ok, err := d.PickTime(f.seed())
		if err != nil || !ok {
			return err
		}
		// The committed value's date part comes from the anchor, not from
		// whatever is currently displayed. See timeAnchor.
		f.commit(combineDateTime(f.timeAnchor(), picked))
		return nil
	}
	return f.pickers.Sheets.ShowTimePicker(f.seed(), f.cfg.use24Hour, 1, f.commit)
}

func (f *Field) activateDateTime() error {
	if d := f.pickers.Dialogs; d != nil {
		date, ok, err := d.PickDate(f.dateSeed(), f.cfg.firstDate, f.cfg.lastDate)
		if err != nil || !ok {
			return err
		}
		clock, ok, err := d.PickTime(f.seed())
		if err != nil || !ok {
			// Cancelling the time step aborts the whole flow; the date
			// picked above is discarded.
			return err
		}
		f.commit(combineDateTime(date, clock))
		return nil
	}
	// The combined sheet always displays 12-hour.
	return f.pickers.Sheets.ShowDateTimePicker(f.dateSeed(), 1, f.commit)
}

func (f *Field) commit(t time.Time) {
	v := t
	f.SetValue(&v)
}

// seed is the picker starting point: current value, else the resolved
// initial selection.
func (f *Field) seed() time.Time {
	if v := f.state.value; v != nil {
		return *v
	}
	return f.cfg.initialSelection
}

// dateSeed clamps the seed into the configured date range so date pickers
// always open on a selectable date.
func (f *Field) dateSeed() time.Time {
	return clampToRange(f.seed(), f.cfg.firstDate, f.cfg.lastDate)
}

// timeAnchor supplies the date part of a time-only commit. The default
// anchor is the construction-time initial value (falling back to the
// initial selection), keeping the legacy behavior where editing the
// time reverts the date to the initial one. PreserveDisplayedDate anchors
// on the currently displayed value instead.
func (f *Field) timeAnchor() time.Time {
	if f.cfg.preserveDisplayedDate {
		if v := f.state.value; v != nil {
			return *v
		}
		return f.cfg.initialSelection
	}
	if f.cfg.initialValue != nil {
		return *f.cfg.initialValue
	}
	return f.cfg.initialSelection
}

func combineDateTime(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, date.Location())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clampToRange(t, first, last time.Time) time.Time {
	if t.Before(first) {
		return first
	}
	if t.After(last) {
		return last
	}
	return t
}
