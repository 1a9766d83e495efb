package page

import (
	"sort"

	"github.com/wilhasse/go-mdf/format"
	"github.com/wilhasse/go-mdf/record"
)

// Page owns the full 8192-byte buffer plus its decoded header. Slots and
// records are computed lazily from the buffer; nothing is copied out of it
// except where a caller explicitly asks for a byte slice.
type Page struct {
	Index  uint32
	FileID uint16
	Header Header
	Buf    []byte
}

// New decodes a fresh 8192-byte page image.
func New(index uint32, fileID uint16, buf []byte) (*Page, error) {
	if len(buf) != format.PageSize {
		return nil, format.ErrBadPageSize
	}
	hdr, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}
	return &Page{Index: index, FileID: fileID, Header: hdr, Buf: buf}, nil
}

// Pointer returns the pointer that identifies this page.
func (p *Page) Pointer() Pointer {
	return Pointer{PageID: uint16(p.Index), FileID: p.FileID}
}

// Slots returns the byte ranges [start,end) of every slot on the page, in
// ascending offset order. The slot array itself lives at the tail of the
// page: SlotCount little-endian u16 offsets, read backwards from the last
// two bytes.
func (p *Page) Slots() ([][2]int, error) {
	n := int(p.Header.SlotCount)
	offsets := make([]int, n)
	for i := 0; i < n; i++ {
		pos := format.PageSize - format.PageDirSlotSize*(i+1)
		v, err := format.Le16(p.Buf, pos)
		if err != nil {
			return nil, err
		}
		offsets[i] = int(v)
	}
	sort.Ints(offsets)

	ranges := make([][2]int, n)
	for i := 0; i < n; i++ {
		end := format.PageSize
		if i+1 < n {
			end = offsets[i+1]
		}
		ranges[i] = [2]int{offsets[i], end}
	}
	return ranges, nil
}

// Records decodes every slot into a record.Record. A slot that fails to
// decode is reported in the second return value but does not abort
// iteration over the remaining slots.
func (p *Page) Records() ([]record.Record, []error) {
	ranges, err := p.Slots()
	if err != nil {
		return nil, []error{err}
	}
	recs := make([]record.Record, 0, len(ranges))
	var errs []error
	for _, r := range ranges {
		rec, err := record.Parse(p.Buf[r[0]:r[1]])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, errs
}
