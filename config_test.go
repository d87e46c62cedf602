package datefield

import (
	"errors"
	"testing"
	"time"
)

func ptr(t time.Time) *time.Time { return &t }

func testPickers() Pickers {
	return Pickers{Dialogs: &fakeDialogs{}}
}

func TestNew_ModeConflictFails(t *testing.T) {
	cfg := Config{
		DateOnly:     true,
		TimeOnly:     true,
		Label:        "When",
		InitialValue: ptr(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}
	if _, err := New(cfg, nil, testPickers()); !errors.Is(err, ErrModeConflict) {
		t.Fatalf("expected ErrModeConflict, got %v", err)
	}
}

func TestNew_InvertedDateRangeFails(t *testing.T) {
	cfg := Config{
		FirstDate: time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
		LastDate:  time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	if _, err := New(cfg, nil, testPickers()); !errors.Is(err, ErrBadDateRange) {
		t.Fatalf("expected ErrBadDateRange, got %v", err)
	}
}

func TestNew_RequiresAPickerFamily(t *testing.T) {
	if _, err := New(Config{}, nil, Pickers{}); !errors.Is(err, ErrNoPickers) {
		t.Fatalf("expected ErrNoPickers, got %v", err)
	}
}

func TestResolveConfig_Defaults(t *testing.T) {
	rc, err := resolveConfig(Config{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rc.label != "Date Time" {
		t.Fatalf("expected default label, got %q", rc.label)
	}
	if rc.placeholder != "Please pick a date/time" {
		t.Fatalf("expected default placeholder, got %q", rc.placeholder)
	}
	if got, want := rc.firstDate, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected firstDate %v, got %v", want, got)
	}
	if got, want := rc.lastDate, time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected lastDate %v, got %v", want, got)
	}
	if !rc.enabled {
		t.Fatalf("expected field enabled by default")
	}
	if rc.clearable || rc.autoValidate {
		t.Fatalf("expected clearable/autoValidate off by default")
	}
}

func TestResolveConfig_InitialSelectionDefaultsToConstructionClock(t *testing.T) {
	now := time.Date(2025, time.July, 4, 12, 30, 0, 0, time.UTC)
	rc, err := resolveConfig(Config{Now: func() time.Time { return now }})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !rc.initialSelection.Equal(now) {
		t.Fatalf("expected initial selection %v, got %v", now, rc.initialSelection)
	}
}

func TestResolveConfig_DefaultLayouts(t *testing.T) {
	cases := []struct {
		name   string
		cfg    Config
		layout string
	}{
		{"date only", Config{DateOnly: true}, layoutDate},
		{"time only 12h", Config{TimeOnly: true}, layoutTime12},
		{"time only 24h", Config{TimeOnly: true, Use24Hour: true}, layoutTime24},
		{"date+time 12h", Config{}, layoutDateTime12},
		{"date+time 24h", Config{Use24Hour: true}, layoutDateTime24},
		{"explicit wins", Config{DateOnly: true, Format: "2006-01-02"}, "2006-01-02"},
	}
	for _, tc := range cases {
		rc, err := resolveConfig(tc.cfg)
		if err != nil {
			t.Fatalf("%s: resolve: %v", tc.name, err)
		}
		if rc.layout != tc.layout {
			t.Fatalf("%s: expected layout %q, got %q", tc.name, tc.layout, rc.layout)
		}
	}
}

func TestFormattedValue_DefaultDateLayout(t *testing.T) {
	v := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	f, err := New(Config{DateOnly: true, InitialValue: ptr(v)}, nil, testPickers())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := f.FormattedValue(); got != "Tue, Mar 5, 2024" {
		t.Fatalf("expected %q, got %q", "Tue, Mar 5, 2024", got)
	}
}

func TestFormattedValue_NilValueIsEmpty(t *testing.T) {
	f, err := New(Config{}, nil, testPickers())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := f.FormattedValue(); got != "" {
		t.Fatalf("expected empty formatted value, got %q", got)
	}
}
