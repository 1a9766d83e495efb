// Package record decodes one record's byte range into a column-by-column
// cursor: fixed-length primitives, null-bitmap-aware optional primitives,
// and variable-length slices.
package record

import (
	"github.com/wilhasse/go-mdf/format"
)

// Record is a decoded byte range within a page. Only Primary records carry
// a usable column layout; the other seven kinds are recognized but kept
// opaque, matching the design's non-goals.
type Record struct {
	Type              format.RecordType
	HasNullBitmap     bool
	HasVariableLength bool

	fixedArea       []byte
	numberOfColumns uint16
	nullBitmap      []byte
	varOffsets      []int // absolute, measured from the start of the record
	varBytes        []byte
	varBase         int // absolute offset where the variable-column area begins

	raw []byte
}

// Parse decodes a record header and its fixed/null-bitmap/variable-length
// sections from b, which must hold exactly this record's bytes (a page
// slot's [start,end) range).
func Parse(b []byte) (Record, error) {
	hdr, err := parseHeader(b)
	if err != nil {
		return Record{}, err
	}
	if len(b) < format.RecordStatusByteCount+2 {
		return Record{}, format.ErrShortRead
	}

	fixedTotal, err := format.Le16(b, format.FixedLengthTotalOff)
	if err != nil {
		return Record{}, err
	}
	if fixedTotal < 4 {
		return Record{}, format.ErrZeroFixedLength
	}
	fixedLen := int(fixedTotal) - 4
	if fixedLen == 0 {
		return Record{}, format.ErrZeroFixedLength
	}

	cur := 4
	if cur+fixedLen > len(b) {
		return Record{}, format.ErrShortRead
	}
	fixedArea := b[cur : cur+fixedLen]
	cur += fixedLen

	numCols, err := format.Le16(b, cur)
	if err != nil {
		return Record{}, err
	}
	cur += 2

	rec := Record{
		Type:              hdr.Type,
		HasNullBitmap:     hdr.HasNullBitmap,
		HasVariableLength: hdr.HasVariableLength,
		fixedArea:         fixedArea,
		numberOfColumns:   numCols,
		raw:               b,
	}

	if hdr.HasNullBitmap {
		n := (int(numCols) + 7) / 8
		if cur+n > len(b) {
			return Record{}, format.ErrShortRead
		}
		rec.nullBitmap = b[cur : cur+n]
		cur += n
	}

	if hdr.HasVariableLength {
		varCount, err := format.Le16(b, cur)
		if err != nil {
			return Record{}, err
		}
		cur += 2
		offsets := make([]int, varCount)
		for i := 0; i < int(varCount); i++ {
			v, err := format.Le16(b, cur)
			if err != nil {
				return Record{}, err
			}
			offsets[i] = int(v)
			cur += 2
		}
		rec.varOffsets = offsets
		rec.varBase = cur
		if cur <= len(b) {
			rec.varBytes = b[cur:]
		}
	}

	return rec, nil
}

// NewCursor returns a fresh column-by-column cursor over rec.
func (rec Record) NewCursor() *Cursor {
	return &Cursor{
		rec:         rec,
		fixed:       rec.fixedArea,
		nullBitPos:  0,
		varIdx:      0,
		varPrevEnd:  rec.varBase,
		varRemain:   rec.varBytes,
	}
}

// NumberOfColumns is the declared column count carried in the record.
func (rec Record) NumberOfColumns() uint16 { return rec.numberOfColumns }
