package record

import "github.com/wilhasse/go-mdf/format"

// Cursor is a consumable view over one record, exposing ordered
// column-by-column consumption. Columns must be consumed in schema order;
// the cursor has no notion of column identity, only position.
type Cursor struct {
	rec Record

	fixed      []byte // remaining fixed-length bytes
	nullBitPos int    // next bit to read from rec.nullBitmap, LSB0

	varIdx     int   // next entry in rec.varOffsets
	varPrevEnd int   // running absolute offset, starts at rec.varBase
	varRemain  []byte
}

// nextNullBit reports whether the next column is NULL, per the bitmap (LSB0
// within each byte: bit 0 of byte 0 is column 0). Columns are not missing a
// bitmap entry just because the record has no bitmap at all: callers only
// invoke TakeFixed/TakeVariable for columns that exist in the schema, and a
// record with HasNullBitmap false has no nullable columns to ask about.
func (c *Cursor) nextNullBit() bool {
	if c.rec.nullBitmap == nil {
		c.nullBitPos++
		return false
	}
	byteIdx := c.nullBitPos / 8
	bitIdx := uint(c.nullBitPos % 8)
	c.nullBitPos++
	if byteIdx >= len(c.rec.nullBitmap) {
		return false
	}
	return c.rec.nullBitmap[byteIdx]&(1<<bitIdx) != 0
}

// TakeFixed pops the next null bit; if set, returns (nil, true, nil) without
// consuming any fixed-length bytes. Otherwise it splits n bytes from the
// fixed-length area. The null bitmap advances for every fixed-length column
// regardless of nullability.
func (c *Cursor) TakeFixed(n int) (slice []byte, isNull bool, err error) {
	if c.nextNullBit() {
		return nil, true, nil
	}
	if n > len(c.fixed) {
		return nil, false, format.ErrShortRead
	}
	slice = c.fixed[:n]
	c.fixed = c.fixed[n:]
	return slice, false, nil
}

// TakeFixedRequired is TakeFixed for a column the schema declares NOT NULL;
// it errors if the null bit is unexpectedly set.
func (c *Cursor) TakeFixedRequired(n int) ([]byte, error) {
	slice, isNull, err := c.TakeFixed(n)
	if err != nil {
		return nil, err
	}
	if isNull {
		return nil, format.ErrShortRead
	}
	return slice, nil
}

// TakeVariable pops the next null bit; if set, returns (nil, true, nil).
// Otherwise it requests the next slice from the variable-column iterator.
// If the variable iterator is exhausted while more variable columns are
// requested, it returns an empty (non-nil) slice rather than an error or
// null, mirroring the on-disk convention that trailing omitted
// variable-length columns are zero-length.
func (c *Cursor) TakeVariable() (slice []byte, isNull bool, err error) {
	if c.nextNullBit() {
		return nil, true, nil
	}
	if c.varIdx >= len(c.rec.varOffsets) {
		return []byte{}, false, nil
	}
	end := c.rec.varOffsets[c.varIdx]
	c.varIdx++

	length := end - c.varPrevEnd
	if length < 0 {
		length = 0
	}
	if length > len(c.varRemain) {
		length = len(c.varRemain)
	}
	slice = c.varRemain[:length]
	c.varRemain = c.varRemain[length:]
	c.varPrevEnd = end
	return slice, false, nil
}
