package value

import "errors"

// ErrUnknownColumnType is returned by Decode when a column's sql_type has no
// registered primitive dispatch.
var ErrUnknownColumnType = errors.New("value: unknown column type")

// ErrBadDecimalWidth is returned when a decimal column's encoded byte count
// does not match any of the four supported mantissa widths.
var ErrBadDecimalWidth = errors.New("value: unsupported decimal storage width")

// ErrBadDateTime2Scale is returned when a datetime2 column carries a scale
// outside the supported 0-7 range.
var ErrBadDateTime2Scale = errors.New("value: datetime2 scale out of range")
