// internal/decoder/registers_test.go
package decoder

import (
	"strings"
	"testing"

	"github.com/tamzrod/ds1307-decoder/internal/annot"
)

func TestBCD2Int(t *testing.T) {
	for hi := 0; hi <= 9; hi++ {
		for lo := 0; lo <= 9; lo++ {
			b := byte(hi<<4 | lo)
			want := hi*10 + lo
			if got := bcd2int(b); got != want {
				t.Fatalf("bcd2int(%#02x) = %d, want %d", b, got, want)
			}
		}
	}
}

func TestSecondsClockHalt(t *testing.T) {
	d, sink := newTest(t, Options{})

	d.decodeSeconds(0xa5) // CH set, BCD 25

	if d.dt.Second != 25 {
		t.Fatalf("second = %d, want 25", d.dt.Second)
	}
	ch := sink.byClass(annot.BitClockHalt)
	if len(ch) != 1 {
		t.Fatalf("expected 1 clock halt annotation, got %d", len(ch))
	}
	if ch[0].Labels[0] != "Clock halt bit: 1" {
		t.Fatalf("clock halt label = %q", ch[0].Labels[0])
	}
}

func TestHours12Mode(t *testing.T) {
	cases := []struct {
		name string
		b    byte
		want int
	}{
		{"noon is 12 PM", 0x72, 12},     // mode|PM|BCD 12
		{"midnight is 12 AM", 0x52, 0},  // mode|BCD 12
		{"afternoon", 0x65, 17},         // mode|PM|BCD 5
		{"morning", 0x49, 9},            // mode|BCD 9
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, sink := newTest(t, Options{})
			d.decodeHours(tc.b)
			if d.dt.Hour != tc.want {
				t.Fatalf("hour = %d, want %d", d.dt.Hour, tc.want)
			}
			mode := sink.byClass(annot.BitMode)
			if len(mode) != 1 || mode[0].Labels[0] != "12 hours mode" {
				t.Fatalf("mode annotation = %+v", mode)
			}
			if got := len(sink.byClass(annot.BitAmPm)); got != 1 {
				t.Fatalf("expected 1 AM/PM annotation, got %d", got)
			}
		})
	}
}

func TestHours24Mode(t *testing.T) {
	d, sink := newTest(t, Options{})

	d.decodeHours(0x23)

	if d.dt.Hour != 23 {
		t.Fatalf("hour = %d, want 23", d.dt.Hour)
	}
	mode := sink.byClass(annot.BitMode)
	if len(mode) != 1 || mode[0].Labels[0] != "24 hours mode" {
		t.Fatalf("mode annotation = %+v", mode)
	}
	if got := len(sink.byClass(annot.BitAmPm)); got != 0 {
		t.Fatalf("expected no AM/PM annotation in 24h mode, got %d", got)
	}
}

func TestWeekdayRebase(t *testing.T) {
	wednesday := 2 // index in the canonical Monday-first list

	d, _ := newTest(t, Options{StartWeekday: wednesday})
	d.decodeWeekday(0x01) // chip's day 1
	if d.dt.Weekday != wednesday {
		t.Fatalf("weekday = %d, want %d", d.dt.Weekday, wednesday)
	}

	d.decodeWeekday(0x07) // chip's day 7
	if want := (wednesday + 6) % 7; d.dt.Weekday != want {
		t.Fatalf("weekday = %d, want %d", d.dt.Weekday, want)
	}
}

func TestWeekdayRebaseAtOrigin(t *testing.T) {
	// chip weekday 0 is invalid BCD; the rebase arithmetic must not
	// go negative with a Monday start
	d, _ := newTest(t, Options{StartWeekday: 0})
	d.decodeWeekday(0x00)
	if d.dt.Weekday != 6 {
		t.Fatalf("weekday = %d, want 6", d.dt.Weekday)
	}
}

func TestYearCenturyAdjust(t *testing.T) {
	d, sink := newTest(t, Options{})

	d.decodeYear(0x23)

	if d.dt.Year != 2023 {
		t.Fatalf("year = %d, want 2023", d.dt.Year)
	}
	// the bit annotation keeps the raw two-digit decode
	ys := sink.byClass(annot.BitYear)
	if len(ys) != 1 || ys[0].Labels[0] != "Year bits: 23" {
		t.Fatalf("year annotation = %+v", ys)
	}
}

func TestMonthNames(t *testing.T) {
	d, sink := newTest(t, Options{})

	d.decodeMonth(0x05)
	ms := sink.byClass(annot.BitMonth)
	if len(ms) != 1 || !strings.Contains(ms[0].Labels[0], "May") {
		t.Fatalf("month annotation = %+v", ms)
	}

	d.decodeMonth(0x00)
	ms = sink.byClass(annot.BitMonth)
	if len(ms) != 2 || !strings.Contains(ms[1].Labels[0], "Unknown") {
		t.Fatalf("month annotation = %+v", ms)
	}
}

func TestControlRates(t *testing.T) {
	cases := []struct {
		b   byte
		hz  string
		khz string
	}{
		{0x00, "1 Hz", "0 kHz"},
		{0x01, "4096 Hz", "4 kHz"},
		{0x02, "8192 Hz", "8 kHz"},
		{0x03, "32768 Hz", "32 kHz"},
	}

	for _, tc := range cases {
		d, sink := newTest(t, Options{})
		d.decodeControl(tc.b)

		rs := sink.byClass(annot.BitRate)
		if len(rs) != 1 {
			t.Fatalf("expected 1 rate annotation, got %d", len(rs))
		}
		if !hasLabelWith(rs[0], tc.hz) {
			t.Fatalf("rate labels %v missing %q", rs[0].Labels, tc.hz)
		}
		if !hasLabelWith(rs[0], tc.khz) {
			t.Fatalf("rate labels %v missing %q", rs[0].Labels, tc.khz)
		}
	}
}

func TestControlFlags(t *testing.T) {
	d, sink := newTest(t, Options{})

	d.decodeControl(0x90) // OUT | SQWE

	outs := sink.byClass(annot.BitOut)
	if len(outs) != 1 || outs[0].Labels[0] != "OUT bit: 1" {
		t.Fatalf("out annotation = %+v", outs)
	}
	sq := sink.byClass(annot.BitSqwe)
	if len(sq) != 1 || !hasLabelWith(sq[0], "enabled") {
		t.Fatalf("sqwe annotation = %+v", sq)
	}

	d.decodeControl(0x00)
	sq = sink.byClass(annot.BitSqwe)
	if len(sq) != 2 || !hasLabelWith(sq[1], "disabled") {
		t.Fatalf("sqwe annotation = %+v", sq)
	}

	// reserved bits 6, 5, 3, 2 are marked on every control decode
	if got := len(sink.byClass(annot.BitReserved)); got != 8 {
		t.Fatalf("expected 8 reserved annotations, got %d", got)
	}
}

func TestNVRAMRadix(t *testing.T) {
	cases := []struct {
		radix Radix
		want  string
	}{
		{RadixHex, "0x5a"},
		{RadixDec, "90"},
		{RadixOct, "0o132"},
		{RadixBin, "0b01011010"},
	}

	for _, tc := range cases {
		d, sink := newTest(t, Options{Radix: tc.radix})
		d.decodeNVRAM(0x5a)

		ns := sink.byClass(annot.BitNVRAM)
		if len(ns) != 1 || !hasLabelWith(ns[0], tc.want) {
			t.Fatalf("radix %v: nvram annotation = %+v, want value %q",
				tc.radix, ns, tc.want)
		}
	}
}

func hasLabelWith(a annot.Annotation, sub string) bool {
	for _, l := range a.Labels {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}
