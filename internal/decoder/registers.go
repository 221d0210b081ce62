// internal/decoder/registers.go
package decoder

import (
	"strconv"

	"github.com/tamzrod/ds1307-decoder/internal/annot"
)

// Bit positions within the chip's registers.
const (
	bitClockHalt = 7 // seconds register
	bitMode12h   = 6 // hours register
	bitAmPm      = 5 // hours register
	bitOut       = 7 // control register
	bitSqwe      = 4 // control register
)

// rates maps the control register's 2-bit rate select to Hz.
var rates = [4]int{1, 4096, 8192, 32768}

// bcd2int converts a BCD byte to binary. Nibbles outside 0-9 are not
// validated; the result is whatever the arithmetic produces, matching
// the chip's undefined behavior on corrupt data.
func bcd2int(b byte) int {
	return int(b>>4)*10 + int(b&0x0f)
}

// decodeSeconds handles register 0x00: BCD seconds and the clock
// halt flag in bit 7.
func (d *Decoder) decodeSeconds(b byte) {
	d.putBits(annot.RegSeconds, 7, 0,
		[]string{"Seconds register", "Seconds", "Sec", "S"})

	ch := 0
	if b&(1<<bitClockHalt) != 0 {
		ch = 1
	}
	d.putBits(annot.BitClockHalt, bitClockHalt, bitClockHalt,
		annot.WithValue([]string{"Clock halt bit", "Clock halt", "Clk hlt", "CH", "CH", "C"}, 2, strconv.Itoa(ch)))

	d.dt.Second = bcd2int(b & 0x7f)
	d.putBits(annot.BitSecond, 6, 0,
		annot.WithValue([]string{"Second bits", "Second", "Sec", "S", "S"}, 1, strconv.Itoa(d.dt.Second)))
}

// decodeMinutes handles register 0x01: BCD minutes, bit 7 reserved.
func (d *Decoder) decodeMinutes(b byte) {
	d.putBits(annot.RegMinutes, 7, 0,
		[]string{"Minutes register", "Minutes", "Min", "M"})

	d.putReserved(7)

	d.dt.Minute = bcd2int(b & 0x7f)
	d.putBits(annot.BitMinute, 6, 0,
		annot.WithValue([]string{"Minute bits", "Minute", "Min", "M", "M"}, 1, strconv.Itoa(d.dt.Minute)))
}

// decodeHours handles register 0x02. Bit 6 selects 12h mode; in 12h
// mode bit 5 is AM/PM and the hour is converted to the 24h internal
// representation for the composite date-time.
func (d *Decoder) decodeHours(b byte) {
	d.putBits(annot.RegHours, 7, 0,
		[]string{"Hours register", "Hours", "Hrs", "Hr", "H"})

	d.putReserved(7)

	hourLabels := []string{"Hour bits", "Hour", "Hr", "H", "H"}

	if b&(1<<bitMode12h) != 0 {
		d.putBits(annot.BitMode, bitMode12h, bitMode12h,
			[]string{"12 hours mode", "12h mode", "12h", "12"})

		ampm := "AM"
		if b&(1<<bitAmPm) != 0 {
			ampm = "PM"
		}
		d.putBits(annot.BitAmPm, bitAmPm, bitAmPm,
			[]string{ampm, ampm[:1]})

		hour := bcd2int(b & 0x1f)
		d.putBits(annot.BitHour, 4, 0,
			annot.WithValue(hourLabels, 1, strconv.Itoa(hour)))

		// 24h internal representation: noon stays 12, midnight is 0.
		hour %= 12
		if ampm == "PM" {
			hour += 12
		}
		d.dt.Hour = hour
		return
	}

	d.putBits(annot.BitMode, bitMode12h, bitMode12h,
		[]string{"24 hours mode", "24h mode", "24h", "24"})

	d.dt.Hour = bcd2int(b & 0x3f)
	d.putBits(annot.BitHour, 5, 0,
		annot.WithValue(hourLabels, 1, strconv.Itoa(d.dt.Hour)))
}

// decodeWeekday handles register 0x03: the chip's 1-based weekday,
// rebased to the configured start weekday over the canonical
// Monday-first list.
func (d *Decoder) decodeWeekday(b byte) {
	d.putBits(annot.RegWeekdays, 7, 0,
		[]string{"Weekdays register", "Weekdays", "Wday", "WD", "W"})

	for i := 7; i >= 3; i-- {
		d.putReserved(i)
	}

	chip := bcd2int(b & 0x07)
	idx := (d.opts.StartWeekday + chip - 1) % 7
	if idx < 0 {
		idx += 7
	}
	d.dt.Weekday = idx

	d.putBits(annot.BitWeekday, 2, 0,
		annot.WithValue([]string{"Weekday bits", "Weekday", "WD", "WD", "W"}, 2, Weekdays[idx]))
}

// decodeDay handles register 0x04: BCD day of month.
func (d *Decoder) decodeDay(b byte) {
	d.putBits(annot.RegDays, 7, 0,
		[]string{"Days register", "Days", "Day", "D"})

	d.putReserved(7)
	d.putReserved(6)

	d.dt.Day = bcd2int(b & 0x3f)
	d.putBits(annot.BitDay, 5, 0,
		annot.WithValue([]string{"Date bits", "Day", "D", "D"}, 1, strconv.Itoa(d.dt.Day)))
}

// decodeMonth handles register 0x05: BCD month. The display label
// carries the month name; out-of-range values render as "Unknown"
// while the stored field keeps the raw decode.
func (d *Decoder) decodeMonth(b byte) {
	d.putBits(annot.RegMonths, 7, 0,
		[]string{"Months register", "Months", "Month", "Mon", "M"})

	for i := 7; i >= 5; i-- {
		d.putReserved(i)
	}

	d.dt.Month = bcd2int(b & 0x1f)
	d.putBits(annot.BitMonth, 4, 0,
		annot.WithValue([]string{"Month bits", "Month", "Mon", "M", "M"}, 1, monthName(d.dt.Month)))
}

// decodeYear handles register 0x06: BCD year 0-99, century-adjusted
// by 2000 for the composite date-time. The bit annotation carries the
// raw two-digit decode.
func (d *Decoder) decodeYear(b byte) {
	d.putBits(annot.RegYears, 7, 0,
		[]string{"Years register", "Years", "Year", "Yr", "Y"})

	year := bcd2int(b)
	d.putBits(annot.BitYear, 7, 0,
		annot.WithValue([]string{"Year bits", "Year", "Yr", "Y", "Y"}, 1, strconv.Itoa(year)))

	d.dt.Year = year + 2000
}

// decodeControl handles register 0x07: OUT, SQWE and the square wave
// rate select.
func (d *Decoder) decodeControl(b byte) {
	d.putBits(annot.RegControl, 7, 0,
		[]string{"Control register", "Control", "Ctrl", "C"})

	for _, i := range []int{6, 5, 3, 2} {
		d.putReserved(i)
	}

	out := 0
	if b&(1<<bitOut) != 0 {
		out = 1
	}
	d.putBits(annot.BitOut, bitOut, bitOut,
		annot.WithValue([]string{"OUT bit", "OUT", "O", "O"}, 1, strconv.Itoa(out)))

	sqwe := 0
	sqweTxt := "disabled"
	if b&(1<<bitSqwe) != 0 {
		sqwe = 1
		sqweTxt = "enabled"
	}
	labels := annot.WithValue([]string{"SQWE bit", "SQWE"}, 0, sqweTxt)
	labels = append(labels,
		annot.WithValue([]string{"SQWE", "SW", "S", "S"}, 1, strconv.Itoa(sqwe))...)
	d.putBits(annot.BitSqwe, bitSqwe, bitSqwe, labels)

	rate := rates[b&0x03]
	labels = annot.WithValue(
		[]string{"Rate select bits", "Square wave rate", "SQW rate"},
		0, strconv.Itoa(rate)+" Hz")
	labels = append(labels, annot.WithValue(
		[]string{"Rate select bits", "Square wave rate", "SQW rate", "Rate", "RS"},
		0, strconv.Itoa(rate/1000)+" kHz")...)
	labels = append(labels, annot.WithValue(
		[]string{"SQW rate", "Rate", "RS", "RS", "R"},
		2, strconv.Itoa(rate/1000))...)
	d.putBits(annot.BitRate, 1, 0, labels)
}

// decodeNVRAM handles positions 0x08-0x3f: raw byte, no semantic
// fields, rendered in the configured radix.
func (d *Decoder) decodeNVRAM(b byte) {
	d.putBits(annot.RegNVRAM, 7, 0,
		[]string{"Non-volatile memory register", "NVRAM", "RAM", "R"})

	d.putBits(annot.BitNVRAM, 7, 0,
		annot.WithValue([]string{"Non-volatile memory bits", "NVRAM", "RAM", "R", "R"}, 1, d.opts.formatByte(b)))
}
