// Package dialog implements the single-shot picker family as blocking
// terminal prompts: each invocation yields exactly one value or "no
// selection" when the prompt is dismissed. Dismissal is a defined outcome,
// never an error.
package dialog

import (
	"errors"
	"time"

	"datefield"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Platform runs single-shot pickers as survey prompts. The zero value is
// usable; Opts (e.g. survey.WithStdio for tests) are passed to every
// prompt.
type Platform struct {
	Opts []survey.AskOpt
}

var _ datefield.DialogPickers = (*Platform)(nil)

func (p *Platform) ask(q survey.Prompt, ans *string, extra ...survey.AskOpt) (bool, error) {
	opts := append(extra, p.Opts...)
	err := survey.AskOne(q, ans, opts...)
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// PickDate prompts for a date within [first, last]. Only the returned
// value's date part is meaningful.
func (p *Platform) PickDate(initial, first, last time.Time) (time.Time, bool, error) {
	q := &survey.Input{
		Message: "Date (YYYY-MM-DD):",
		Default: initial.Format(dateLayout),
	}
	var ans string
	ok, err := p.ask(q, &ans, survey.WithValidator(validateDate(first, last)))
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	t, err := parseDate(ans)
	if err != nil {
		// The validator already gates this; a parse failure here means the
		// prompt was bypassed somehow.
		return time.Time{}, false, err
	}
	return t, true, nil
}

// PickTime prompts for an hour and minute (24h entry). Only the returned
// value's clock part is meaningful.
func (p *Platform) PickTime(initial time.Time) (time.Time, bool, error) {
	q := &survey.Input{
		Message: "Time (HH:MM):",
		Default: initial.Format(clockLayout),
	}
	var ans string
	ok, err := p.ask(q, &ans, survey.WithValidator(validateClock))
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	t, err := parseClock(ans)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
