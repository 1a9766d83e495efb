package page

import "github.com/wilhasse/go-mdf/format"

// Header is the first 96 bytes of every page.
type Header struct {
	SlotCount       uint16
	NextPagePointer Pointer // zero value when absent
}

func parseHeader(p []byte) (Header, error) {
	if len(p) < format.PageSize {
		return Header{}, format.ErrBadPageSize
	}
	slotCount, err := format.Le16(p, format.SlotCountOff)
	if err != nil {
		return Header{}, err
	}
	next, err := ParsePointer(p[format.NextPagePointerOff : format.NextPagePointerOff+format.PagePointerSize])
	if err != nil {
		return Header{}, err
	}
	return Header{SlotCount: slotCount, NextPagePointer: next}, nil
}
