// internal/decoder/decoder.go
package decoder

import (
	"errors"

	"github.com/tamzrod/ds1307-decoder/internal/annot"
	"github.com/tamzrod/ds1307-decoder/internal/i2c"
)

// Protocol constants of the DS1307. These define the chip and MUST
// NOT be configurable.
const (
	// SlaveAddress is the fixed I2C address of the chip.
	SlaveAddress = 0x68

	// NVRAMMin is the first NVRAM position; pointers at or above it
	// dispatch to the NVRAM handler.
	NVRAMMin = 0x08

	// NVRAMMax is the last NVRAM position; the auto-incrementing
	// pointer wraps past it to register 0x00.
	NVRAMMax = 0x3f
)

// Sink receives emitted annotations.
type Sink interface {
	Put(a annot.Annotation)
}

type phase int

const (
	phaseIdle phase = iota
	phaseAddress
	phasePointer
	phaseData
)

// Decoder is the transaction state machine. It is the only holder of
// transaction-scoped mutable state and must see events strictly in
// arrival order. Not safe for concurrent use; it is built for a
// single caller.
type Decoder struct {
	opts Options
	sink Sink

	state   phase
	txStart uint64 // start sample of the open transaction
	isWrite bool   // last direction seen
	reg     int    // register pointer, auto-incrementing

	// bits is the cache for the byte in flight, indexed LSB-first:
	// bits[i] carries numeric weight 1<<i, so bits[7] holds the
	// earliest samples (MSB is transmitted first on the wire).
	// Cleared after every non-BITS event.
	bits []i2c.BitSpan

	dt DateTime // last-known field values; stale between transactions

	ss, es uint64 // samples of the event being processed
}

// New creates a decoder with immutable options.
func New(opts Options, sink Sink) (*Decoder, error) {
	if sink == nil {
		return nil, errors.New("decoder: sink required")
	}
	if opts.StartWeekday < 0 || opts.StartWeekday > 6 {
		return nil, errors.New("decoder: start weekday index out of range")
	}
	return &Decoder{opts: opts, sink: sink}, nil
}

// Decode processes one bus event and emits zero or more annotations.
// Events the current phase does not expect are ignored without a
// state change; the decoder never stops consuming.
func (d *Decoder) Decode(ev i2c.Event) {
	d.ss, d.es = ev.Start, ev.End

	// Bit spans are collected in every state and consumed by the
	// next byte-bearing event for sub-byte positioning.
	if ev.Kind == i2c.KindBits {
		d.bits = append(d.bits, ev.Bits...)
		return
	}
	defer func() { d.bits = d.bits[:0] }()

	switch d.state {
	case phaseIdle:
		if ev.Kind != i2c.KindStart {
			return
		}
		d.txStart = ev.Start
		d.state = phaseAddress

	case phaseAddress:
		switch ev.Kind {
		case i2c.KindAddressWrite, i2c.KindAddressRead:
			if ev.Data != SlaveAddress {
				d.putBadAddress(ev.Data)
				d.state = phaseIdle
				return
			}
			d.isWrite = ev.Kind == i2c.KindAddressWrite
			d.putAddress(ev.Data)
			if d.isWrite {
				d.state = phasePointer
			} else {
				d.state = phaseData
			}
		}

	case phasePointer:
		switch ev.Kind {
		case i2c.KindDataWrite:
			d.reg = int(ev.Data)
			d.putPointer(ev.Data)
			d.state = phaseData
		case i2c.KindStop:
			// No pointer byte at all: device-presence probe, a
			// legitimate bus idiom, not a decode warning.
			d.putPresenceCheck()
			d.state = phaseIdle
		}

	case phaseData:
		switch ev.Kind {
		case i2c.KindDataWrite, i2c.KindDataRead:
			d.isWrite = ev.Kind == i2c.KindDataWrite
			d.decodeRegister(ev.Data)
		case i2c.KindStartRepeat:
			// Combined write-pointer/read-data idiom: a new
			// addressing sub-transaction, direction may flip.
			d.state = phaseAddress
		case i2c.KindStop:
			d.putDateTime()
			d.state = phaseIdle
		}
	}
}

// decodeRegister dispatches the data byte to the handler selected by
// the register pointer, honoring the chip's auto-increment: pointers
// past the fixed-function block collapse to the NVRAM handler, and
// the pointer wraps past NVRAMMax to 0x00.
func (d *Decoder) decodeRegister(b byte) {
	reg := d.reg
	if reg < 0 {
		reg = 0
	}

	dispatch := reg
	if dispatch >= NVRAMMin {
		dispatch = NVRAMMax
	}

	switch dispatch {
	case 0x00:
		d.decodeSeconds(b)
	case 0x01:
		d.decodeMinutes(b)
	case 0x02:
		d.decodeHours(b)
	case 0x03:
		d.decodeWeekday(b)
	case 0x04:
		d.decodeDay(b)
	case 0x05:
		d.decodeMonth(b)
	case 0x06:
		d.decodeYear(b)
	case 0x07:
		d.decodeControl(b)
	case NVRAMMax:
		d.decodeNVRAM(b)
	}

	d.putAccess(reg, b, dispatch == NVRAMMax)

	d.reg = reg + 1
	if d.reg > NVRAMMax {
		d.reg = 0
	}
}

// ---- SAMPLE POSITIONING ----

// span returns the sample range covering bit positions high..low by
// numeric weight. MSB is on the wire first, so the high bit carries
// the earlier start sample. Falls back to the carrying byte event's
// own range when the bit cache is incomplete.
func (d *Decoder) span(high, low int) (uint64, uint64) {
	if high < len(d.bits) && low < len(d.bits) {
		return d.bits[high].Start, d.bits[low].End
	}
	return d.ss, d.es
}

// put emits one annotation with labels ordered longest first.
func (d *Decoder) put(c annot.Class, ss, es uint64, labels []string) {
	d.sink.Put(annot.Annotation{
		Class:  c,
		Start:  ss,
		End:    es,
		Labels: annot.LongestFirst(labels),
	})
}

// putBits emits over the sample range of bit positions high..low.
func (d *Decoder) putBits(c annot.Class, high, low int, labels []string) {
	ss, es := d.span(high, low)
	d.put(c, ss, es, labels)
}

// putReserved marks one reserved bit. No value is attached.
func (d *Decoder) putReserved(bit int) {
	d.putBits(annot.BitReserved, bit, bit,
		[]string{"Reserved bit", "Reserved", "Rsvd", "R"})
}

// ---- TRANSACTION-LEVEL EMISSIONS ----

func (d *Decoder) putAddress(b byte) {
	val := d.opts.formatByte(b)
	d.putBits(annot.RegAddress, 7, 0,
		annot.WithValue([]string{"Slave address", "Address", "Addr", "A"}, 1, val))
}

func (d *Decoder) putBadAddress(b byte) {
	val := d.opts.formatByte(b)
	d.put(annot.InfoWarning, d.txStart, d.es,
		annot.WithValue([]string{"Unknown slave address", "Bad address", "Bad addr", "!"}, 2, val))
}

func (d *Decoder) putPointer(b byte) {
	val := d.opts.formatByte(b)
	d.putBits(annot.RegPointer, 7, 0,
		annot.WithValue([]string{"Register pointer", "Pointer", "Ptr", "P"}, 1, val))
	d.putBits(annot.BitData, 7, 0,
		annot.WithValue([]string{"Data bits", "Data", "D"}, 1, val))
}

func (d *Decoder) putPresenceCheck() {
	d.put(annot.InfoCheck, d.txStart, d.es,
		[]string{"Device presence check", "Presence check", "Check", "P"})
}

// putAccess emits the info-row record for one data byte.
func (d *Decoder) putAccess(reg int, b byte, nvram bool) {
	val := d.opts.formatByte(b)
	loc := d.opts.formatByte(byte(reg & 0xff))

	var c annot.Class
	var labels []string
	switch {
	case nvram && d.isWrite:
		c = annot.InfoMemory
		labels = []string{"Write memory " + val + " to " + loc, "Memory write: " + val, "MW " + val}
	case nvram:
		c = annot.InfoMemory
		labels = []string{"Read memory " + val + " from " + loc, "Memory read: " + val, "MR " + val}
	case d.isWrite:
		c = annot.InfoWrite
		labels = []string{"Write data " + val + " to register " + loc, "Write: " + val, "W " + val}
	default:
		c = annot.InfoRead
		labels = []string{"Read data " + val + " from register " + loc, "Read: " + val, "R " + val}
	}

	d.putBits(c, 7, 0, labels)
}

// putDateTime emits the composite date-time record spanning the whole
// transaction, prefixed by the most recent transfer direction.
func (d *Decoder) putDateTime() {
	prefix := "Read"
	if d.isWrite {
		prefix = "Written"
	}
	s := formatDateTime(d.opts.DateFormat, d.dt)
	d.put(annot.InfoDateTime, d.txStart, d.es,
		[]string{prefix + " datetime: " + s, s})
}
