// internal/i2c/reader.go
package i2c

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// record is the wire shape of one capture line.
// Byte-bearing kinds require "data"; BITS requires "bits".
type record struct {
	Kind string      `json:"kind"`
	Data *int        `json:"data"`
	Bits [][3]uint64 `json:"bits"`
	SS   uint64      `json:"ss"`
	ES   uint64      `json:"es"`
}

// Reader streams Events out of a JSON-lines capture.
// One event per line. Blank lines are skipped.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Next returns the next event, io.EOF at end of stream.
// A malformed line is a hard error naming the line number; the
// decoder downstream never sees partial events.
func (r *Reader) Next() (Event, error) {
	for r.sc.Scan() {
		r.line++
		raw := r.sc.Bytes()
		if len(raw) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return Event{}, fmt.Errorf("i2c: capture line %d: %v", r.line, err)
		}

		ev, err := rec.event()
		if err != nil {
			return Event{}, fmt.Errorf("i2c: capture line %d: %v", r.line, err)
		}
		return ev, nil
	}

	if err := r.sc.Err(); err != nil {
		return Event{}, err
	}
	return Event{}, io.EOF
}

func (rec record) event() (Event, error) {
	kind, err := ParseKind(rec.Kind)
	if err != nil {
		return Event{}, err
	}

	ev := Event{Kind: kind, Start: rec.SS, End: rec.ES}

	if kind.HasData() {
		if rec.Data == nil {
			return Event{}, fmt.Errorf("event %s requires data", kind)
		}
		if *rec.Data < 0 || *rec.Data > 0xff {
			return Event{}, fmt.Errorf("event %s data %d out of byte range", kind, *rec.Data)
		}
		ev.Data = byte(*rec.Data)
	}

	if kind == KindBits {
		if len(rec.Bits) == 0 {
			return Event{}, fmt.Errorf("event %s requires bit spans", kind)
		}
		ev.Bits = make([]BitSpan, 0, len(rec.Bits))
		for _, b := range rec.Bits {
			if b[0] > 1 {
				return Event{}, fmt.Errorf("bit value %d out of range", b[0])
			}
			ev.Bits = append(ev.Bits, BitSpan{Bit: byte(b[0]), Start: b[1], End: b[2]})
		}
	}

	return ev, nil
}
