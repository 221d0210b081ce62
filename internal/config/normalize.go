// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Decoder

	// ------------------------------------------------------------
	// DEFAULTS
	// ------------------------------------------------------------

	if d.Radix == "" {
		d.Radix = "hex"
	}
	if d.StartWeekday == "" {
		d.StartWeekday = "Monday"
	}
	if d.DateFormat == "" {
		d.DateFormat = "European"
	}

	// ------------------------------------------------------------
	// CANONICAL CASING
	// ------------------------------------------------------------

	d.Radix = strings.ToLower(d.Radix)
	d.StartWeekday = canonical(weekdays, d.StartWeekday)
	d.DateFormat = canonical(dateFormats, d.DateFormat)
}

// canonical replaces v with the exact-cased entry it matched during
// validation. Unmatched values pass through untouched.
func canonical(set []string, v string) string {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return s
		}
	}
	return v
}
