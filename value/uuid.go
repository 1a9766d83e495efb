package value

import (
	"github.com/google/uuid"
	"github.com/wilhasse/go-mdf/record"
)

// decodeUUID reads a 16-byte uniqueidentifier. SQL Server stores the first
// three GUID fields little-endian and the last two big-endian, so the bytes
// must be reordered into RFC 4122 big-endian form before handing them to
// uuid.UUID.
func decodeUUID(c *record.Cursor) (Value, error) {
	b, isNull, err := c.FixedRaw(16)
	if err != nil {
		return Value{}, err
	}
	if isNull {
		return Null, nil
	}

	var out [16]byte
	out[0], out[1], out[2], out[3] = b[3], b[2], b[1], b[0]
	out[4], out[5] = b[5], b[4]
	out[6], out[7] = b[7], b[6]
	copy(out[8:], b[8:16])

	u, err := uuid.FromBytes(out[:])
	if err != nil {
		return Value{}, err
	}
	return uuidValue(u), nil
}
