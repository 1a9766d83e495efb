package record

import (
	"github.com/wilhasse/go-mdf/format"
)

// header holds the decoded record-header bits (byte 0 status byte; byte 1
// is a second status byte the core ignores).
type header struct {
	Type              format.RecordType
	HasNullBitmap     bool
	HasVariableLength bool
}

func parseHeader(b []byte) (header, error) {
	if len(b) < 1 {
		return header{}, format.ErrShortRead
	}
	status := b[0]
	rtype := format.RecordType((status >> 1) & 0x7)
	return header{
		Type:              rtype,
		HasNullBitmap:     status&(1<<4) != 0,
		HasVariableLength: status&(1<<5) != 0,
	}, nil
}
