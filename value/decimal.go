package value

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/wilhasse/go-mdf/record"
)

// decimalStorageWidth computes the on-disk byte count (sign byte included)
// as 1 + 4*ceil(precision/9), clipped to 17 bytes. This gives the four
// storage widths 5/9/13/17 for precision bands 1-9/10-18/19-27/28-38; the
// 28-38 band is supported here via shopspring/decimal's arbitrary-precision
// mantissa rather than rejected, resolving the 20-28 precision open
// question.
func decimalStorageWidth(precision int) int {
	chunks := (precision + 8) / 9
	width := 1 + 4*chunks
	if width > 17 {
		width = 17
	}
	return width
}

// decodeDecimal reads a sign byte followed by a little-endian unsigned
// mantissa (width per decimalStorageWidth) and scales it by 10^-scale. The
// sign byte is zero for negative values and nonzero for positive, matching
// the on-disk convention; the mantissa itself is stored as a plain
// magnitude, not two's complement.
func decodeDecimal(c *record.Cursor, precision, scale int) (Value, error) {
	width := decimalStorageWidth(precision)
	switch width {
	case 5, 9, 13, 17:
	default:
		return Value{}, ErrBadDecimalWidth
	}
	b, isNull, err := c.FixedRaw(width)
	if err != nil {
		return Value{}, err
	}
	if isNull {
		return Null, nil
	}
	if len(b) < 1 {
		return Value{}, ErrBadDecimalWidth
	}

	signByte := b[0]
	mantissaBytes := b[1:]

	be := make([]byte, len(mantissaBytes))
	for i, v := range mantissaBytes {
		be[len(mantissaBytes)-1-i] = v
	}
	mantissa := new(big.Int).SetBytes(be)
	if signByte == 0 {
		mantissa.Neg(mantissa)
	}

	d := decimal.NewFromBigInt(mantissa, int32(-scale))
	return decimalValue(d), nil
}
