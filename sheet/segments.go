package sheet

import "time"

// kind selects which picker surface a model renders.
type kind int

const (
	kindDate kind = iota
	kindTime
	kindDateTime
)

// segment identifies one focusable part of the sheet.
type segment int

const (
	segYear segment = iota
	segMonth
	segDay
	segHour
	segMinute
	segAmPm
)

// segmentsFor returns the focus order for a picker kind. The combined
// date+time sheet always displays 12-hour, so it always carries an AM/PM
// segment; time-only sheets carry one only in 12-hour mode.
func segmentsFor(k kind, use24h bool) []segment {
	switch k {
	case kindDate:
		return []segment{segYear, segMonth, segDay}
	case kindTime:
		if use24h {
			return []segment{segHour, segMinute}
		}
		return []segment{segHour, segMinute, segAmPm}
	default:
		return []segment{segYear, segMonth, segDay, segHour, segMinute, segAmPm}
	}
}

func daysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	max := daysInMonth(y, m)
	if d > max {
		return max
	}
	return d
}

// bump adjusts one segment of t by delta steps with calendar-correct
// rollover: month bumps wrap and adjust the year, day bumps are date
// arithmetic (so Dec 31 + 1 day lands on Jan 1 of the next year), and time
// bumps wrap within the day without touching the date. Minute bumps move by
// minuteStep and carry into hours.
func bump(t time.Time, seg segment, delta, minuteStep int) time.Time {
	y, mo, d := t.Year(), t.Month(), t.Day()
	h, mi := t.Hour(), t.Minute()
	loc := t.Location()

	switch seg {
	case segYear:
		y += delta
		d = clampDay(y, mo, d)
	case segMonth:
		m := int(mo) + delta
		for m < 1 {
			m += 12
			y--
		}
		for m > 12 {
			m -= 12
			y++
		}
		mo = time.Month(m)
		d = clampDay(y, mo, d)
	case segDay:
		return t.AddDate(0, 0, delta)
	case segHour:
		h += delta
		for h < 0 {
			h += 24
		}
		for h >= 24 {
			h -= 24
		}
	case segMinute:
		if minuteStep < 1 {
			minuteStep = 1
		}
		mi += delta * minuteStep
		for mi < 0 {
			mi += 60
			h--
		}
		for mi >= 60 {
			mi -= 60
			h++
		}
		for h < 0 {
			h += 24
		}
		for h >= 24 {
			h -= 24
		}
	case segAmPm:
		if h >= 12 {
			h -= 12
		} else {
			h += 12
		}
	}
	return time.Date(y, mo, d, h, mi, 0, 0, loc)
}

// clampDate pulls t's date part into [first, last], preserving the clock.
func clampDate(t, first, last time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	firstDay := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, t.Location())
	lastDay := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, t.Location())
	switch {
	case day.Before(firstDay):
		return time.Date(first.Year(), first.Month(), first.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	case day.After(lastDay):
		return time.Date(last.Year(), last.Month(), last.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	default:
		return t
	}
}
