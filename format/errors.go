package format

import "errors"

// Sentinel errors for the taxonomy in the design's error-handling section.
// I/O and short-read failures:
var ErrShortRead = errors.New("mdf: short read")

// Format-violation failures: a header field fell outside its allowed range.
var (
	ErrBadPageSize      = errors.New("mdf: page buffer is not 8192 bytes")
	ErrBadPagePointer   = errors.New("mdf: page pointer is not 6 bytes")
	ErrZeroFixedLength  = errors.New("mdf: record has zero-length fixed area")
	ErrBadRecordType    = errors.New("mdf: record type out of range")
)

// Unsupported-feature failures.
var ErrUnsupportedRecordType = errors.New("mdf: record type is not Primary")

// Out-of-bounds-seek failures: forward-only violation.
var ErrBackwardSeek = errors.New("mdf: page pointer refers to an already-read page")
