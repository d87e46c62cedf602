package datefield

// Default display layouts per field mode, mirroring the classic
// "EEE, MMM d, yyyy" / "h:mm a" patterns as Go time layouts.
const (
	layoutDate   = "Mon, Jan 2, 2006"
	layoutTime12 = "3:04 PM"
	layoutTime24 = "15:04"
	layoutDateTime12 = "Mon, Jan 2, 2006 3:04PM"
	layoutDateTime24 = "Mon, Jan 2, 2006 15:04"
)

func defaultLayout(dateOnly, timeOnly, use24h bool) string {
	switch {
	case dateOnly:
		return layoutDate
	case timeOnly:
		if use24h {
			return layoutTime24
		}
		return layoutTime12
	default:
		if use24h {
			return layoutDateTime24
		}
		return layoutDateTime12
	}
}
