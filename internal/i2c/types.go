// internal/i2c/types.go
package i2c

import "fmt"

// Kind identifies one framed I2C bus event.
type Kind int

const (
	KindStart Kind = iota
	KindStartRepeat
	KindStop
	KindAddressWrite
	KindAddressRead
	KindDataWrite
	KindDataRead
	KindBits
)

// kindNames uses the upstream framer vocabulary verbatim.
var kindNames = map[Kind]string{
	KindStart:        "START",
	KindStartRepeat:  "START REPEAT",
	KindStop:         "STOP",
	KindAddressWrite: "ADDRESS WRITE",
	KindAddressRead:  "ADDRESS READ",
	KindDataWrite:    "DATA WRITE",
	KindDataRead:     "DATA READ",
	KindBits:         "BITS",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// ParseKind maps a framer kind string to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("i2c: unknown event kind %q", s)
}

// HasData reports whether events of this kind carry a payload byte.
func (k Kind) HasData() bool {
	switch k {
	case KindAddressWrite, KindAddressRead, KindDataWrite, KindDataRead:
		return true
	}
	return false
}

// BitSpan is one physical bit of the byte currently in flight.
type BitSpan struct {
	Bit   byte // 0 or 1
	Start uint64
	End   uint64
}

// Event is one unit of input from the bus framer.
// Exactly one of Data or Bits is meaningful, depending on Kind.
// Immutable once produced.
type Event struct {
	Kind  Kind
	Data  byte
	Bits  []BitSpan
	Start uint64 // first sample covered, inclusive
	End   uint64 // last sample boundary, exclusive
}
