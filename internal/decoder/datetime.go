// internal/decoder/datetime.go
package decoder

import "fmt"

// DateTime accumulates decoded fields across a transaction. Values
// persist as last-known between transactions; a transaction touching
// only some registers reuses the rest.
type DateTime struct {
	Second  int
	Minute  int
	Hour    int // 24h internal representation
	Weekday int // index into Weekdays, already rebased
	Day     int
	Month   int
	Year    int // century-adjusted
}

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// monthName returns the display name for a 1-based month, or
// "Unknown" outside 1-12. Display only: the stored field keeps the
// raw decode.
func monthName(m int) string {
	if m < 1 || m > 12 {
		return "Unknown"
	}
	return months[m-1]
}

// formatDateTime renders the composite date-time string for the
// selected template. Numeric fields are zero-padded to fixed width.
func formatDateTime(f DateFormat, dt DateTime) string {
	wd := Weekdays[((dt.Weekday%7)+7)%7]

	switch f {
	case DateAmerican:
		return fmt.Sprintf("%s, %02d/%02d/%04d %02d:%02d:%02d",
			wd, dt.Month, dt.Day, dt.Year, dt.Hour, dt.Minute, dt.Second)
	case DateANSI:
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
			dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
	default:
		return fmt.Sprintf("%s %02d.%02d.%04d %02d:%02d:%02d",
			wd, dt.Day, dt.Month, dt.Year, dt.Hour, dt.Minute, dt.Second)
	}
}
