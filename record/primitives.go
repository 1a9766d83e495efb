package record

import (
	"encoding/binary"
)

// Int8Required reads one required (NOT NULL) signed byte.
func (c *Cursor) Int8Required() (int8, error) {
	b, err := c.TakeFixedRequired(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// Int16Required reads one required signed 16-bit LE integer.
func (c *Cursor) Int16Required() (int16, error) {
	b, err := c.TakeFixedRequired(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

// Int32Required reads one required signed 32-bit LE integer.
func (c *Cursor) Int32Required() (int32, error) {
	b, err := c.TakeFixedRequired(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// Int64Required reads one required signed 64-bit LE integer.
func (c *Cursor) Int64Required() (int64, error) {
	b, err := c.TakeFixedRequired(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// Int32Optional reads a nullable signed 32-bit LE integer.
func (c *Cursor) Int32Optional() (val int32, isNull bool, err error) {
	b, isNull, err := c.TakeFixed(4)
	if err != nil || isNull {
		return 0, isNull, err
	}
	return int32(binary.LittleEndian.Uint32(b)), false, nil
}

// Int64Optional reads a nullable signed 64-bit LE integer.
func (c *Cursor) Int64Optional() (val int64, isNull bool, err error) {
	b, isNull, err := c.TakeFixed(8)
	if err != nil || isNull {
		return 0, isNull, err
	}
	return int64(binary.LittleEndian.Uint64(b)), false, nil
}

// Bit reads a 1-byte boolean: nonzero is true.
func (c *Cursor) Bit() (bool, error) {
	b, err := c.TakeFixedRequired(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// FixedBytes reads n required raw bytes without interpreting them, used by
// the catalog decoders for page-pointer fields.
func (c *Cursor) FixedBytes(n int) ([]byte, error) {
	return c.TakeFixedRequired(n)
}

// FixedRaw gives the value package raw access to optionally-null fixed byte
// spans of arbitrary size (used for decimal and uuid columns).
func (c *Cursor) FixedRaw(n int) (b []byte, isNull bool, err error) {
	return c.TakeFixed(n)
}

// VariableRaw gives the value package raw access to the next variable-length
// column slice.
func (c *Cursor) VariableRaw() (b []byte, isNull bool, err error) {
	return c.TakeVariable()
}
