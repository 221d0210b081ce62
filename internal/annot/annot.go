// internal/annot/annot.go
package annot

// Class identifies one annotation category.
// The set is closed: one variant per decoded meaning.
type Class int

const (
	// ---- REGISTER ROW ----

	RegAddress Class = iota
	RegPointer
	RegSeconds
	RegMinutes
	RegHours
	RegWeekdays
	RegDays
	RegMonths
	RegYears
	RegControl
	RegNVRAM

	// ---- BIT ROW ----

	BitReserved
	BitData
	BitClockHalt
	BitMode
	BitAmPm
	BitOut
	BitSqwe
	BitRate
	BitSecond
	BitMinute
	BitHour
	BitWeekday
	BitDay
	BitMonth
	BitYear
	BitNVRAM

	// ---- INFO ROW ----

	InfoWarning
	InfoCheck
	InfoWrite
	InfoRead
	InfoDateTime
	InfoMemory
)

var classNames = map[Class]string{
	RegAddress:   "reg-address",
	RegPointer:   "reg-pointer",
	RegSeconds:   "reg-seconds",
	RegMinutes:   "reg-minutes",
	RegHours:     "reg-hours",
	RegWeekdays:  "reg-weekdays",
	RegDays:      "reg-days",
	RegMonths:    "reg-months",
	RegYears:     "reg-years",
	RegControl:   "reg-control",
	RegNVRAM:     "reg-nvram",
	BitReserved:  "bit-reserved",
	BitData:      "bit-data",
	BitClockHalt: "bit-ch",
	BitMode:      "bit-mode",
	BitAmPm:      "bit-ampm",
	BitOut:       "bit-out",
	BitSqwe:      "bit-sqwe",
	BitRate:      "bit-rate",
	BitSecond:    "bit-second",
	BitMinute:    "bit-minute",
	BitHour:      "bit-hour",
	BitWeekday:   "bit-weekday",
	BitDay:       "bit-date",
	BitMonth:     "bit-month",
	BitYear:      "bit-year",
	BitNVRAM:     "bit-nvram",
	InfoWarning:  "warning",
	InfoCheck:    "check",
	InfoWrite:    "write",
	InfoRead:     "read",
	InfoDateTime: "datetime",
	InfoMemory:   "memory",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return "unknown"
}

// Row is the display row a class belongs to.
type Row string

const (
	RowRegisters Row = "regs"
	RowBits      Row = "bits"
	RowStrings   Row = "datetime"
	RowWarnings  Row = "warnings"
)

// Row returns the display row for the class.
func (c Class) Row() Row {
	switch {
	case c >= RegAddress && c <= RegNVRAM:
		return RowRegisters
	case c >= BitReserved && c <= BitNVRAM:
		return RowBits
	case c == InfoWarning:
		return RowWarnings
	}
	return RowStrings
}

// Annotation is one sample-anchored output record.
// Labels are ordered longest to shortest; the sink picks the first
// candidate that fits its display.
type Annotation struct {
	Class  Class
	Start  uint64
	End    uint64
	Labels []string
}

// Fit returns the first label no longer than width. When none fit it
// returns the last (shortest) label; width <= 0 means no limit.
func (a Annotation) Fit(width int) string {
	if len(a.Labels) == 0 {
		return ""
	}
	if width <= 0 {
		return a.Labels[0]
	}
	for _, l := range a.Labels {
		if len(l) <= width {
			return l
		}
	}
	return a.Labels[len(a.Labels)-1]
}
