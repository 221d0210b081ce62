// internal/decoder/options.go
package decoder

import (
	"fmt"
	"strconv"
)

// Radix selects the rendering of raw byte values.
type Radix int

const (
	RadixHex Radix = iota
	RadixDec
	RadixOct
	RadixBin
)

// DateFormat selects the composite date-time template.
type DateFormat int

const (
	DateEuropean DateFormat = iota
	DateAmerican
	DateANSI
)

// Weekdays is the canonical Monday-first weekday list. The configured
// start weekday is an index into it; the chip's 1-based weekday field
// is rebased against that index.
var Weekdays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
	"Saturday", "Sunday",
}

// Options is the immutable decoder configuration.
// Formatting only: no option changes decoding semantics.
type Options struct {
	Radix        Radix
	StartWeekday int // index into Weekdays
	DateFormat   DateFormat
}

// formatByte renders a raw byte in the configured radix.
func (o Options) formatByte(b byte) string {
	switch o.Radix {
	case RadixDec:
		return strconv.Itoa(int(b))
	case RadixOct:
		return fmt.Sprintf("0o%03o", b)
	case RadixBin:
		return fmt.Sprintf("0b%08b", b)
	default:
		return fmt.Sprintf("0x%02x", b)
	}
}
