// internal/annot/annot_test.go
package annot

import (
	"reflect"
	"testing"
)

func TestWithValue(t *testing.T) {
	base := []string{"Second bits", "Second", "Sec", "S", "S"}

	got := WithValue(base, 1, "42")
	want := []string{"Second bits: 42", "Second: 42", "Sec: 42", "S: 42", "S"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WithValue = %v, want %v", got, want)
	}

	// input stays untouched
	if base[0] != "Second bits" {
		t.Fatalf("input mutated: %v", base)
	}
}

func TestLongestFirst(t *testing.T) {
	got := LongestFirst([]string{"SQWE: 1", "SQWE bit: enabled", "S", "SQWE: enabled"})
	want := []string{"SQWE bit: enabled", "SQWE: enabled", "SQWE: 1", "S"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LongestFirst = %v, want %v", got, want)
	}
}

func TestLongestFirst_StableOnTies(t *testing.T) {
	got := LongestFirst([]string{"CH", "WD", "A"})
	want := []string{"CH", "WD", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LongestFirst = %v, want %v", got, want)
	}
}

func TestFit(t *testing.T) {
	a := Annotation{Labels: []string{"Clock halt bit: 1", "Clock halt: 1", "CH: 1", "C"}}

	if got := a.Fit(0); got != "Clock halt bit: 1" {
		t.Fatalf("Fit(0) = %q", got)
	}
	if got := a.Fit(13); got != "Clock halt: 1" {
		t.Fatalf("Fit(13) = %q", got)
	}
	if got := a.Fit(2); got != "C" {
		t.Fatalf("Fit(2) = %q", got)
	}
	// none fit: shortest wins anyway
	empty := Annotation{Labels: []string{"abc", "ab"}}
	if got := empty.Fit(1); got != "ab" {
		t.Fatalf("Fit(1) = %q", got)
	}
	if got := (Annotation{}).Fit(10); got != "" {
		t.Fatalf("Fit on empty labels = %q", got)
	}
}

func TestClassRows(t *testing.T) {
	cases := []struct {
		c Class
		r Row
	}{
		{RegSeconds, RowRegisters},
		{RegNVRAM, RowRegisters},
		{BitReserved, RowBits},
		{BitNVRAM, RowBits},
		{InfoWarning, RowWarnings},
		{InfoDateTime, RowStrings},
		{InfoCheck, RowStrings},
	}
	for _, tc := range cases {
		if got := tc.c.Row(); got != tc.r {
			t.Fatalf("%v row = %v, want %v", tc.c, got, tc.r)
		}
	}
}
