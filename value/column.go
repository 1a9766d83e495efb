package value

import (
	"strings"

	"github.com/wilhasse/go-mdf/record"
)

// Column describes one catalog column's decode parameters, carried forward
// from syscolpars/sysscalartypes into the dispatch table below.
type Column struct {
	Name      string
	SQLType   string
	MaxLength int
	Precision int
	Scale     int
}

// Decode consumes exactly the columns worth of cursor state for col's
// sql_type and returns the typed Value. Columns are consumed in schema
// order; callers must invoke Decode once per catalog column, in order.
func (col Column) Decode(c *record.Cursor) (Value, error) {
	switch strings.ToLower(col.SQLType) {
	case "bit":
		ok, err := c.Bit()
		if err != nil {
			return Value{}, err
		}
		return bitValue(ok), nil

	case "tinyint":
		v, err := c.Int8Required()
		if err != nil {
			return Value{}, err
		}
		return tinyIntValue(v), nil

	case "smallint":
		v, err := c.Int16Required()
		if err != nil {
			return Value{}, err
		}
		return smallIntValue(v), nil

	case "int", "money", "smallmoney":
		v, isNull, err := c.Int32Optional()
		if err != nil {
			return Value{}, err
		}
		if isNull {
			return Null, nil
		}
		return intValue(v), nil

	case "bigint":
		v, isNull, err := c.Int64Optional()
		if err != nil {
			return Value{}, err
		}
		if isNull {
			return Null, nil
		}
		return bigIntValue(v), nil

	case "datetime", "smalldatetime":
		return decodeDateTime(c)

	case "datetime2":
		return decodeDateTime2(c, col.Scale)

	case "nchar":
		return decodeNChar(c, col.MaxLength)

	case "nvarchar", "varchar":
		return decodeNVarChar(c)

	case "uniqueidentifier":
		return decodeUUID(c)

	case "decimal", "numeric":
		return decodeDecimal(c, col.Precision, col.Scale)

	default:
		return Value{}, ErrUnknownColumnType
	}
}
