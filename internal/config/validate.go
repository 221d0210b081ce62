// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

var radixes = []string{"hex", "dec", "oct", "bin"}

var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
	"Saturday", "Sunday",
}

var dateFormats = []string{"European", "American", "ANSI"}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Empty values are allowed; Normalize fills defaults.
func Validate(cfg *Config) error {
	d := cfg.Decoder

	if d.Radix != "" && !containsFold(radixes, d.Radix) {
		return fmt.Errorf(
			"config: radix %q not one of %s",
			d.Radix, strings.Join(radixes, "|"),
		)
	}

	if d.StartWeekday != "" && !containsFold(weekdays, d.StartWeekday) {
		return fmt.Errorf(
			"config: start_weekday %q is not a weekday name",
			d.StartWeekday,
		)
	}

	if d.DateFormat != "" && !containsFold(dateFormats, d.DateFormat) {
		return fmt.Errorf(
			"config: date_format %q not one of %s",
			d.DateFormat, strings.Join(dateFormats, "|"),
		)
	}

	return nil
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
