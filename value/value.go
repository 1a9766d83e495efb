// Package value maps a catalog column descriptor onto the record cursor's
// primitives and produces the tagged Value the rest of go-mdf streams to
// callers.
package value

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tags which field of a Value is meaningful.
type Kind int

const (
	KindNull Kind = iota
	KindBit
	KindTinyInt
	KindSmallInt
	KindInt
	KindBigInt
	KindDecimal
	KindString
	KindDateTime
	KindUUID
)

// Value is the tagged sum type every column decodes to.
type Value struct {
	Kind     Kind
	Bit      bool
	TinyInt  int8
	SmallInt int16
	Int      int32
	BigInt   int64
	Decimal  decimal.Decimal
	String   string
	DateTime DateTime
	UUID     uuid.UUID
}

// Null is the canonical SQL NULL value.
var Null = Value{Kind: KindNull}

func bitValue(b bool) Value       { return Value{Kind: KindBit, Bit: b} }
func tinyIntValue(v int8) Value   { return Value{Kind: KindTinyInt, TinyInt: v} }
func smallIntValue(v int16) Value { return Value{Kind: KindSmallInt, SmallInt: v} }
func intValue(v int32) Value      { return Value{Kind: KindInt, Int: v} }
func bigIntValue(v int64) Value   { return Value{Kind: KindBigInt, BigInt: v} }
func decimalValue(d decimal.Decimal) Value { return Value{Kind: KindDecimal, Decimal: d} }
func stringValue(s string) Value  { return Value{Kind: KindString, String: s} }
func dateTimeValue(t DateTime) Value { return Value{Kind: KindDateTime, DateTime: t} }
func uuidValue(u uuid.UUID) Value { return Value{Kind: KindUUID, UUID: u} }

// IsNull reports whether v is SQL NULL.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// String-form display: booleans as true/false, integers and decimals base
// 10, datetimes RFC 3339 UTC, UUIDs lower-case hyphenated, null as "null".
func (v Value) Display() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBit:
		return fmt.Sprintf("%t", v.Bit)
	case KindTinyInt:
		return fmt.Sprintf("%d", v.TinyInt)
	case KindSmallInt:
		return fmt.Sprintf("%d", v.SmallInt)
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindBigInt:
		return fmt.Sprintf("%d", v.BigInt)
	case KindDecimal:
		return v.Decimal.String()
	case KindString:
		return v.String
	case KindDateTime:
		return v.DateTime.Time.UTC().Format("2006-01-02T15:04:05.999999999Z07:00")
	case KindUUID:
		return v.UUID.String()
	default:
		return ""
	}
}
