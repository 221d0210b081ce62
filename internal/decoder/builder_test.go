// internal/decoder/builder_test.go
package decoder

import cfg "github.com/tamzrod/ds1307-decoder/internal/config"

func configFor(radix, weekday, format string) cfg.DecoderConfig {
	return cfg.DecoderConfig{
		Radix:        radix,
		StartWeekday: weekday,
		DateFormat:   format,
	}
}
