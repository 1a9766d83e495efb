// Package page decodes the 8 KiB page image into a structured header and
// slot array, and provides the forward-only, caching page reader.
package page

import (
	"github.com/wilhasse/go-mdf/format"
)

// Pointer identifies a page by its id and the file it lives in. Only the
// low 16 bits of the on-disk 4-byte page id are ever non-zero in observed
// files; a zero PageID with zero FileID means "no pointer".
type Pointer struct {
	PageID uint16
	FileID uint16
}

// IsNil reports whether p denotes "no pointer".
func (p Pointer) IsNil() bool {
	return p.PageID == 0 && p.FileID == 0
}

// ParsePointer reads a 6-byte on-disk page pointer: a 4-byte LE integer
// (only the low 16 bits used) followed by a 2-byte LE file id.
func ParsePointer(b []byte) (Pointer, error) {
	if len(b) != format.PagePointerSize {
		return Pointer{}, format.ErrBadPagePointer
	}
	raw, err := format.Le32(b, 0)
	if err != nil {
		return Pointer{}, err
	}
	fileID, err := format.Le16(b, 4)
	if err != nil {
		return Pointer{}, err
	}
	return Pointer{PageID: uint16(raw), FileID: fileID}, nil
}
