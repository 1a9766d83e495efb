package value

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/wilhasse/go-mdf/record"
)

var utf16leDecoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

// DecodeUTF16LE decodes a raw little-endian UTF-16 byte slice to a Go
// string. Exported for the catalog package, which decodes name fields
// (sysschobj.name, sysscalartype.name, syscolpar.name) the same way but
// outside the Column/Value dispatch.
func DecodeUTF16LE(b []byte) (string, error) {
	return decodeUTF16LE(b)
}

func decodeUTF16LE(b []byte) (string, error) {
	out, _, err := transform.Bytes(utf16leDecoder, b)
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", err
	}
	return string(out), nil
}

// decodeNChar reads a fixed-width nchar(n) column: n UCS-2 code units,
// little-endian, decoded as UTF-16LE rather than the byte-for-byte UTF-8
// reinterpretation a naive port would use.
func decodeNChar(c *record.Cursor, byteLen int) (Value, error) {
	b, isNull, err := c.FixedRaw(byteLen)
	if err != nil {
		return Value{}, err
	}
	if isNull {
		return Null, nil
	}
	s, err := decodeUTF16LE(b)
	if err != nil {
		return Value{}, err
	}
	return stringValue(s), nil
}

// decodeNVarChar reads a variable-width nvarchar or varchar column (both
// route through the same string_variable primitive, decoded as UTF-16LE).
// An empty variable slice decodes to Null rather than the empty string,
// matching the on-disk convention that omitted variable-length columns are
// indistinguishable from zero-length ones.
func decodeNVarChar(c *record.Cursor) (Value, error) {
	b, isNull, err := c.VariableRaw()
	if err != nil {
		return Value{}, err
	}
	if isNull || len(b) == 0 {
		return Null, nil
	}
	s, err := decodeUTF16LE(b)
	if err != nil {
		return Value{}, err
	}
	return stringValue(s), nil
}
