package value

import (
	"testing"

	"github.com/wilhasse/go-mdf/record"
)

func TestColumnDecodeDispatch(t *testing.T) {
	fixed := make([]byte, 1+2+4+8) // bit, smallint, int, bigint
	fixed[0] = 1                   // bit = true
	fixed[1], fixed[2] = 7, 0      // smallint = 7
	fixed[3], fixed[4], fixed[5], fixed[6] = 9, 0, 0, 0 // int = 9
	fixed[7] = 3                                        // bigint low byte = 3

	raw := buildFixedRecord(fixed, 4, nil)
	rec, err := record.Parse(raw)
	if err != nil {
		t.Fatalf("record.Parse: %v", err)
	}
	c := rec.NewCursor()

	bitCol := Column{Name: "flag", SQLType: "bit"}
	v, err := bitCol.Decode(c)
	if err != nil || v.Bit != true {
		t.Fatalf("bit: got (%v, %v)", v, err)
	}

	smallCol := Column{Name: "s", SQLType: "smallint"}
	v, err = smallCol.Decode(c)
	if err != nil || v.SmallInt != 7 {
		t.Fatalf("smallint: got (%v, %v)", v, err)
	}

	intCol := Column{Name: "i", SQLType: "int"}
	v, err = intCol.Decode(c)
	if err != nil || v.Int != 9 {
		t.Fatalf("int: got (%v, %v)", v, err)
	}

	bigCol := Column{Name: "b", SQLType: "bigint"}
	v, err = bigCol.Decode(c)
	if err != nil || v.BigInt != 3 {
		t.Fatalf("bigint: got (%v, %v)", v, err)
	}
}

func TestColumnDecodeIntAndBigIntNullPropagate(t *testing.T) {
	fixed := make([]byte, 4+8)
	raw := buildFixedRecord(fixed, 2, []bool{true, true})
	rec, err := record.Parse(raw)
	if err != nil {
		t.Fatalf("record.Parse: %v", err)
	}
	c := rec.NewCursor()

	intCol := Column{Name: "i", SQLType: "int"}
	v, err := intCol.Decode(c)
	if err != nil {
		t.Fatalf("int Decode: %v", err)
	}
	if !v.IsNull() {
		t.Fatal("expected Null for int with null bit set")
	}

	bigCol := Column{Name: "b", SQLType: "bigint"}
	v, err = bigCol.Decode(c)
	if err != nil {
		t.Fatalf("bigint Decode: %v", err)
	}
	if !v.IsNull() {
		t.Fatal("expected Null for bigint with null bit set")
	}
}

func TestColumnDecodeVarcharMatchesNVarchar(t *testing.T) {
	raw := buildVariableRecord([][]byte{utf16le("Rebenring 56")}, nil)
	rec, err := record.Parse(raw)
	if err != nil {
		t.Fatalf("record.Parse: %v", err)
	}
	col := Column{Name: "street", SQLType: "varchar"}
	v, err := col.Decode(rec.NewCursor())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v.String != "Rebenring 56" {
		t.Fatalf("got %q, want %q", v.String, "Rebenring 56")
	}
}

func TestColumnDecodeCharIsUnknownType(t *testing.T) {
	raw := buildFixedRecord(make([]byte, 4), 1, nil)
	rec, err := record.Parse(raw)
	if err != nil {
		t.Fatalf("record.Parse: %v", err)
	}
	col := Column{Name: "x", SQLType: "char"}
	if _, err := col.Decode(rec.NewCursor()); err != ErrUnknownColumnType {
		t.Fatalf("got %v, want ErrUnknownColumnType", err)
	}
}

func TestColumnDecodeUnknownType(t *testing.T) {
	raw := buildFixedRecord(make([]byte, 4), 1, nil)
	rec, err := record.Parse(raw)
	if err != nil {
		t.Fatalf("record.Parse: %v", err)
	}
	col := Column{Name: "x", SQLType: "xml"}
	if _, err := col.Decode(rec.NewCursor()); err != ErrUnknownColumnType {
		t.Fatalf("got %v, want ErrUnknownColumnType", err)
	}
}

func TestColumnDecodeIsCaseInsensitive(t *testing.T) {
	raw := buildFixedRecord([]byte{1}, 1, nil)
	rec, err := record.Parse(raw)
	if err != nil {
		t.Fatalf("record.Parse: %v", err)
	}
	col := Column{Name: "flag", SQLType: "BIT"}
	v, err := col.Decode(rec.NewCursor())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !v.Bit {
		t.Fatal("expected true")
	}
}
