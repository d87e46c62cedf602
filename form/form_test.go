package form

import (
	"errors"
	"testing"
	"time"

	"datefield"
)

type stubField struct {
	err       error
	validated int
	saved     int
}

func (s *stubField) Validate() error { s.validated++; return s.err }
func (s *stubField) Save()           { s.saved++ }

func TestSubmit_SavesOnlyWhenAllFieldsValid(t *testing.T) {
	good := &stubField{}
	bad := &stubField{err: errors.New("required")}

	var f Form
	f.Add(good, bad)

	if f.Submit() {
		t.Fatalf("expected submit to fail with an invalid field")
	}
	if good.saved != 0 || bad.saved != 0 {
		t.Fatalf("expected no saves after failed validation, got %d/%d", good.saved, bad.saved)
	}
	if good.validated != 1 || bad.validated != 1 {
		t.Fatalf("expected every field validated once, got %d/%d", good.validated, bad.validated)
	}

	bad.err = nil
	if !f.Submit() {
		t.Fatalf("expected submit to succeed once all fields validate")
	}
	if good.saved != 1 || bad.saved != 1 {
		t.Fatalf("expected each field saved once, got %d/%d", good.saved, bad.saved)
	}
}

func TestForm_AcceptsDatefield(t *testing.T) {
	var saved *time.Time
	v := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	fld, err := datefield.New(datefield.Config{
		DateOnly:     true,
		InitialValue: &v,
		OnSave:       func(got *time.Time) { saved = got },
	}, nil, datefield.Pickers{Sheets: noopSheets{}})
	if err != nil {
		t.Fatalf("new field: %v", err)
	}

	var f Form
	f.Add(fld)
	if !f.Submit() {
		t.Fatalf("expected submit to succeed")
	}
	if saved == nil || !saved.Equal(v) {
		t.Fatalf("expected save callback with %v, got %v", v, saved)
	}
}

type noopSheets struct{}

func (noopSheets) ShowDatePicker(_, _, _ time.Time, _ func(time.Time)) error { return nil }
func (noopSheets) ShowTimePicker(_ time.Time, _ bool, _ int, _ func(time.Time)) error {
	return nil
}
func (noopSheets) ShowDateTimePicker(_ time.Time, _ int, _ func(time.Time)) error { return nil }
