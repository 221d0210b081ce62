// internal/config/config.go
package config

type Config struct {
	Decoder DecoderConfig `yaml:"decoder"`
}

// ---- DECODER OPTIONS ----

// DecoderConfig is the static, read-only option surface.
// It affects formatting only, never decoding semantics.
type DecoderConfig struct {
	Radix        string `yaml:"radix"`         // hex | dec | oct | bin
	StartWeekday string `yaml:"start_weekday"` // Monday .. Sunday
	DateFormat   string `yaml:"date_format"`   // European | American | ANSI
}
