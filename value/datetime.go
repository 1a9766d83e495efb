package value

import (
	"encoding/binary"
	"time"

	"github.com/wilhasse/go-mdf/record"
)

// DateTime wraps the decoded instant. Both on-disk encodings (datetime and
// datetime2) normalize to this single representation.
type DateTime struct {
	Time time.Time
}

var datetimeEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
var datetime2Epoch = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)

// decodeDateTime reads the legacy 8-byte datetime encoding: a signed 4-byte
// tick count at 1/300 second resolution followed by a signed 4-byte day
// count since 1900-01-01. A result that falls outside the representable
// calendar range decodes to Null rather than erroring.
func decodeDateTime(c *record.Cursor) (Value, error) {
	b, isNull, err := c.FixedRaw(8)
	if err != nil {
		return Value{}, err
	}
	if isNull {
		return Null, nil
	}
	ticks := int32(binary.LittleEndian.Uint32(b[0:4]))
	days := int32(binary.LittleEndian.Uint32(b[4:8]))

	t := datetimeEpoch.AddDate(0, 0, int(days))
	if t.Year() < 1 || t.Year() > 9999 {
		return Null, nil
	}
	nanos := (int64(ticks) * int64(time.Millisecond) * 10) / 3
	t = t.Add(time.Duration(nanos))
	return dateTimeValue(DateTime{Time: t}), nil
}

// bytesOfTime returns the on-disk width of a datetime2 time-of-day
// component for the given fractional-second scale (0-7).
func bytesOfTime(scale int) (int, error) {
	switch {
	case scale < 0 || scale > 7:
		return 0, ErrBadDateTime2Scale
	case scale <= 2:
		return 3, nil
	case scale <= 4:
		return 4, nil
	default:
		return 5, nil
	}
}

// decodeDateTime2 reads a datetime2(scale) column: a variable-width
// time-of-day component (bytesOfTime(scale) bytes, counted in units of
// 10^-scale seconds since midnight) followed by a 3-byte day count since
// 0001-01-01. The time-of-day portion is parsed, not discarded.
func decodeDateTime2(c *record.Cursor, scale int) (Value, error) {
	timeWidth, err := bytesOfTime(scale)
	if err != nil {
		return Value{}, err
	}
	b, isNull, err := c.FixedRaw(timeWidth + 3)
	if err != nil {
		return Value{}, err
	}
	if isNull {
		return Null, nil
	}

	timePart := b[:timeWidth]
	datePart := b[timeWidth:]

	var ticks uint64
	for i := len(timePart) - 1; i >= 0; i-- {
		ticks = (ticks << 8) | uint64(timePart[i])
	}
	scaleDivisor := int64(1)
	for i := 0; i < scale; i++ {
		scaleDivisor *= 10
	}
	nanos := (int64(ticks) * int64(time.Second)) / scaleDivisor

	days := int(datePart[0]) | int(datePart[1])<<8 | int(datePart[2])<<16
	t := datetime2Epoch.AddDate(0, 0, days).Add(time.Duration(nanos))
	return dateTimeValue(DateTime{Time: t}), nil
}
