package datefield

import (
	"errors"
	"time"
)

// Configuration errors. All of them fail construction; none is recoverable
// at runtime.
var (
	ErrModeConflict = errors.New("datefield: DateOnly and TimeOnly are mutually exclusive")
	ErrBadDateRange = errors.New("datefield: FirstDate must not be after LastDate")
	ErrNoPickers    = errors.New("datefield: at least one picker family (Dialogs or Sheets) is required")
)

// SaveFunc receives the field's current value on form submission.
type SaveFunc func(*time.Time)

// Validator inspects the current value (which may be nil) and returns a
// non-nil error to surface beneath the field. It is never treated as an
// exceptional control path.
type Validator func(*time.Time) error

// Config describes a field at construction time. The zero value is usable:
// it yields an enabled, non-clearable date+time field with default label,
// placeholder, bounds and format.
type Config struct {
	// InitialValue seeds the field's state. In a time-only field it also
	// anchors the date part of committed values (see PreserveDisplayedDate).
	InitialValue *time.Time

	Label string // default "Date Time"

	// Format is a Go time layout. When empty a mode-dependent default is
	// chosen (see defaultLayout).
	Format string

	DateOnly bool
	TimeOnly bool

	// FirstDate/LastDate bound date selection. Defaults: 1970-01-01 and
	// 2100-01-01 (UTC).
	FirstDate time.Time
	LastDate  time.Time

	Use24Hour bool

	// InitialSelection seeds pickers when the current value is nil.
	// Defaults to the construction-time clock reading.
	InitialSelection *time.Time

	Placeholder string // default "Please pick a date/time"

	Clearable    bool
	Disabled     bool
	AutoValidate bool

	// PreserveDisplayedDate changes the time-only commit anchor from the
	// construction-time initial value's date to the currently displayed
	// value's date. The legacy anchoring (false) looks unintended but is
	// kept as the default for compatibility.
	PreserveDisplayedDate bool

	OnSave   SaveFunc
	Validate Validator

	// Now is the clock used to resolve the InitialSelection default.
	Now func() time.Time
}

// resolvedConfig is Config after default resolution. Immutable once built.
type resolvedConfig struct {
	initialValue          *time.Time
	label                 string
	layout                string
	dateOnly              bool
	timeOnly              bool
	firstDate             time.Time
	lastDate              time.Time
	use24Hour             bool
	initialSelection      time.Time
	placeholder           string
	clearable             bool
	enabled               bool
	autoValidate          bool
	preserveDisplayedDate bool
	onSave                SaveFunc
	validate              Validator
}

func resolveConfig(cfg Config) (resolvedConfig, error) {
	if cfg.DateOnly && cfg.TimeOnly {
		return resolvedConfig{}, ErrModeConflict
	}

	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}

	first := cfg.FirstDate
	if first.IsZero() {
		first = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	last := cfg.LastDate
	if last.IsZero() {
		last = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if first.After(last) {
		return resolvedConfig{}, ErrBadDateRange
	}

	label := cfg.Label
	if label == "" {
		label = "Date Time"
	}
	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = "Please pick a date/time"
	}

	layout := cfg.Format
	if layout == "" {
		layout = defaultLayout(cfg.DateOnly, cfg.TimeOnly, cfg.Use24Hour)
	}

	selection := now()
	if cfg.InitialSelection != nil {
		selection = *cfg.InitialSelection
	}

	onSave := cfg.OnSave
	if onSave == nil {
		onSave = func(*time.Time) {}
	}
	validate := cfg.Validate
	if validate == nil {
		validate = func(*time.Time) error { return nil }
	}

	return resolvedConfig{
		initialValue:          cfg.InitialValue,
		label:                 label,
		layout:                layout,
		dateOnly:              cfg.DateOnly,
		timeOnly:              cfg.TimeOnly,
		firstDate:             first,
		lastDate:              last,
		use24Hour:             cfg.Use24Hour,
		initialSelection:      selection,
		placeholder:           placeholder,
		clearable:             cfg.Clearable,
		enabled:               !cfg.Disabled,
		autoValidate:          cfg.AutoValidate,
		preserveDisplayedDate: cfg.PreserveDisplayedDate,
		onSave:                onSave,
		validate:              validate,
	}, nil
}
