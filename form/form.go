// Package form provides the minimal value/error/save/validate aggregation a
// field participates in: a host registers fields, validates them together,
// and saves them on successful submission.
package form

// Field is the contract a form member satisfies. datefield.Field implements
// it directly.
type Field interface {
	// Validate runs the field's validator against its current value and
	// returns the stored result.
	Validate() error

	// Save pushes the field's current value to its save callback.
	Save()
}

// Form aggregates fields for submission.
type Form struct {
	fields []Field
}

// Add registers fields in submission order.
func (f *Form) Add(fields ...Field) {
	f.fields = append(f.fields, fields...)
}

// Validate runs every field's validator and reports whether all passed.
// All validators run even after a failure so every field surfaces its error.
func (f *Form) Validate() bool {
	ok := true
	for _, fld := range f.fields {
		if err := fld.Validate(); err != nil {
			ok = false
		}
	}
	return ok
}

// Submit validates all fields and, only when every one passes, invokes each
// field's save callback in registration order. It reports whether the save
// pass ran.
func (f *Form) Submit() bool {
	if !f.Validate() {
		return false
	}
	for _, fld := range f.fields {
		fld.Save()
	}
	return true
}
