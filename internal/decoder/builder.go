// internal/decoder/builder.go
package decoder

import (
	"fmt"

	cfg "github.com/tamzrod/ds1307-decoder/internal/config"
)

// Build converts one validated, normalized config into decoder
// options. Unknown values are still rejected here so the decoder
// never runs on a half-built option set.
func Build(c cfg.DecoderConfig) (Options, error) {
	var o Options

	switch c.Radix {
	case "hex":
		o.Radix = RadixHex
	case "dec":
		o.Radix = RadixDec
	case "oct":
		o.Radix = RadixOct
	case "bin":
		o.Radix = RadixBin
	default:
		return Options{}, fmt.Errorf("decoder: unknown radix %q", c.Radix)
	}

	o.StartWeekday = -1
	for i, name := range Weekdays {
		if name == c.StartWeekday {
			o.StartWeekday = i
			break
		}
	}
	if o.StartWeekday < 0 {
		return Options{}, fmt.Errorf("decoder: unknown start weekday %q", c.StartWeekday)
	}

	switch c.DateFormat {
	case "European":
		o.DateFormat = DateEuropean
	case "American":
		o.DateFormat = DateAmerican
	case "ANSI":
		o.DateFormat = DateANSI
	default:
		return Options{}, fmt.Errorf("decoder: unknown date format %q", c.DateFormat)
	}

	return o, nil
}
