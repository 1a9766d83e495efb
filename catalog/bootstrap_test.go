package catalog

import (
	"bytes"
	"context"
	"testing"

	"github.com/wilhasse/go-mdf/format"
	"github.com/wilhasse/go-mdf/page"
)

// --- synthetic fixture builders -------------------------------------------
//
// No live .mdf binary ships in this repo, so these tests build well-formed
// pages field-by-field from the documented on-disk byte offsets, the same
// way a real file would lay them out, and drive them through the same
// decoder the real bootstrap uses.

func putU16(b []byte, off int, v uint16) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
}

func putU32(b []byte, off int, v uint32) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
	b[off+3] = byte(v >> 24)
}

func putI64(b []byte, off int, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[off+i] = byte(u >> (8 * i))
	}
}

func utf16leBytes(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

func pagePointerBytes(pageID, fileID uint16) []byte {
	b := make([]byte, 6)
	putU32(b, 0, uint32(pageID))
	putU16(b, 4, fileID)
	return b
}

// buildCatalogRecord assembles a Primary record with no null bitmap: a
// fixed-length area followed by an optional single variable-length column.
func buildCatalogRecord(fixed []byte, numCols uint16, varCol []byte, hasVar bool) []byte {
	buf := []byte{0, 0} // status: type Primary, no null bitmap; variable bit set below
	if hasVar {
		buf[0] |= 1 << 5
	}
	fixedTotal := make([]byte, 2)
	putU16(fixedTotal, 0, uint16(len(fixed)+4))
	buf = append(buf, fixedTotal...)
	buf = append(buf, fixed...)

	numColsBytes := make([]byte, 2)
	putU16(numColsBytes, 0, numCols)
	buf = append(buf, numColsBytes...)

	if hasVar {
		base := len(buf) + 2 + 2
		countBytes := make([]byte, 2)
		putU16(countBytes, 0, 1)
		buf = append(buf, countBytes...)
		offBytes := make([]byte, 2)
		putU16(offBytes, 0, uint16(base+len(varCol)))
		buf = append(buf, offBytes...)
		buf = append(buf, varCol...)
	}
	return buf
}

// buildPageBuf lays records out after the 96-byte header and writes the
// tail slot array, per page/page.go's Slots layout.
func buildPageBuf(records [][]byte, next []byte) []byte {
	buf := make([]byte, format.PageSize)
	if next != nil {
		copy(buf[format.NextPagePointerOff:], next)
	}

	offsets := make([]int, len(records))
	cur := format.PageHeaderSize
	for i, rec := range records {
		offsets[i] = cur
		copy(buf[cur:], rec)
		cur += len(rec)
	}

	putU16(buf, format.SlotCountOff, uint16(len(records)))
	for i, off := range offsets {
		pos := format.PageSize - format.PageDirSlotSize*(i+1)
		putU16(buf, pos, uint16(off))
	}
	return buf
}

func sysallocUnitFixed(auid int64, typ int8, ownerID int64, status int32, fgid int16, pgFirst, pgRoot, pgFirstIAM []byte, pcUsed, pcData, pcReserved int64, dbfragid int32) []byte {
	b := make([]byte, 8+1+8+4+2+6+6+6+8+8+8+4)
	off := 0
	putI64(b, off, auid)
	off += 8
	b[off] = byte(typ)
	off++
	putI64(b, off, ownerID)
	off += 8
	putU32(b, off, uint32(status))
	off += 4
	putU16(b, off, uint16(fgid))
	off += 2
	copy(b[off:], pgFirst)
	off += 6
	copy(b[off:], pgRoot)
	off += 6
	copy(b[off:], pgFirstIAM)
	off += 6
	putI64(b, off, pcUsed)
	off += 8
	putI64(b, off, pcData)
	off += 8
	putI64(b, off, pcReserved)
	off += 8
	putU32(b, off, uint32(dbfragid))
	return b
}

func sysrowSetFixed(rowsetID int64, ownerType int8, idMajor, idMinor, numPart, status int32, fgidfs int16, rcRows int64) []byte {
	b := make([]byte, 8+1+4+4+4+4+2+8)
	off := 0
	putI64(b, off, rowsetID)
	off += 8
	b[off] = byte(ownerType)
	off++
	putU32(b, off, uint32(idMajor))
	off += 4
	putU32(b, off, uint32(idMinor))
	off += 4
	putU32(b, off, uint32(numPart))
	off += 4
	putU32(b, off, uint32(status))
	off += 4
	putU16(b, off, uint16(fgidfs))
	off += 2
	putI64(b, off, rcRows)
	return b
}

func sysschobjFixed(id, nsid int32, nsclass int8, status int32, typ string, pid int32, pclass int8) []byte {
	b := make([]byte, 4+4+1+4+2+4+1)
	off := 0
	putU32(b, off, uint32(id))
	off += 4
	putU32(b, off, uint32(nsid))
	off += 4
	b[off] = byte(nsclass)
	off++
	putU32(b, off, uint32(status))
	off += 4
	copy(b[off:], []byte(typ))
	off += 2
	putU32(b, off, uint32(pid))
	off += 4
	b[off] = byte(pclass)
	return b
}

func sysscalartypeFixed(id, schid int32, xtype int8, length int16, prec, scale int8, collationID, status int32) []byte {
	b := make([]byte, 4+4+1+2+1+1+4+4)
	off := 0
	putU32(b, off, uint32(id))
	off += 4
	putU32(b, off, uint32(schid))
	off += 4
	b[off] = byte(xtype)
	off++
	putU16(b, off, uint16(length))
	off += 2
	b[off] = byte(prec)
	off++
	b[off] = byte(scale)
	off++
	putU32(b, off, uint32(collationID))
	off += 4
	putU32(b, off, uint32(status))
	return b
}

func syscolparFixed(id int32, number int16, colid int32, xtype int8, utype int32, length int16, prec, scale int8, collationID, status int32, maxInRow int16, xmlns, dflt, chk int32) []byte {
	b := make([]byte, 4+2+4+1+4+2+1+1+4+4+2+4+4+4)
	off := 0
	putU32(b, off, uint32(id))
	off += 4
	putU16(b, off, uint16(number))
	off += 2
	putU32(b, off, uint32(colid))
	off += 4
	b[off] = byte(xtype)
	off++
	putU32(b, off, uint32(utype))
	off += 4
	putU16(b, off, uint16(length))
	off += 2
	b[off] = byte(prec)
	off++
	b[off] = byte(scale)
	off++
	putU32(b, off, uint32(collationID))
	off += 4
	putU32(b, off, uint32(status))
	off += 4
	putU16(b, off, uint16(maxInRow))
	off += 2
	putU32(b, off, uint32(xmlns))
	off += 4
	putU32(b, off, uint32(dflt))
	off += 4
	putU32(b, off, uint32(chk))
	return b
}

// buildTestStream assembles a 16-page synthetic .mdf image:
//
//	0-8:  blank pages
//	9:    boot page (database name "TestDB", first_sys_indexes -> page 10)
//	10:   sysallocunits (sysrowsets root + the 3 catalog rowsets + 1 user table)
//	11:   sysrowsets (3 catalog rowsets + 1 user table data rowset)
//	12:   sysschobjs (one user table "Widgets")
//	13:   syscolpars (2 columns of Widgets)
//	14:   sysscalartypes (int, nvarchar)
//	15:   Widgets' data page (1 row)
func buildTestStream(t *testing.T) []byte {
	t.Helper()

	const (
		tableID        = 1000
		widgetsRowset  = 500
		schobjsRowset  = 100
		colparsRowset  = 200
		scalarsRowset  = 300
		xtypeInt       = 56
		xtypeNVarChar  = -25 // 231 (0xE7) read as the signed xtype byte
	)

	nilPtr := make([]byte, 6)

	// Page 10: sysallocunits.
	sysallocRecs := [][]byte{
		buildCatalogRecord(sysallocUnitFixed(sysallocunitSysrowsetsAUID, 1, 0, 0, 0,
			pagePointerBytes(11, 1), nilPtr, nilPtr, 0, 0, 0, 0), 11, nil, false),
		buildCatalogRecord(sysallocUnitFixed(schobjsRowset, 1, schobjsRowset, 0, 0,
			pagePointerBytes(12, 1), nilPtr, nilPtr, 0, 0, 0, 0), 11, nil, false),
		buildCatalogRecord(sysallocUnitFixed(colparsRowset, 1, colparsRowset, 0, 0,
			pagePointerBytes(13, 1), nilPtr, nilPtr, 0, 0, 0, 0), 11, nil, false),
		buildCatalogRecord(sysallocUnitFixed(scalarsRowset, 1, scalarsRowset, 0, 0,
			pagePointerBytes(14, 1), nilPtr, nilPtr, 0, 0, 0, 0), 11, nil, false),
		buildCatalogRecord(sysallocUnitFixed(9999, 1, widgetsRowset, 0, 0,
			pagePointerBytes(15, 1), nilPtr, nilPtr, 0, 0, 0, 0), 11, nil, false),
	}
	page10 := buildPageBuf(sysallocRecs, nil)

	// Page 11: sysrowsets.
	sysrowsetRecs := [][]byte{
		buildCatalogRecord(sysrowSetFixed(schobjsRowset, 0, 34, 1, 0, 0, 0, 0), 8, nil, false),
		buildCatalogRecord(sysrowSetFixed(colparsRowset, 0, 41, 1, 0, 0, 0, 0), 8, nil, false),
		buildCatalogRecord(sysrowSetFixed(scalarsRowset, 0, 50, 1, 0, 0, 0, 0), 8, nil, false),
		buildCatalogRecord(sysrowSetFixed(widgetsRowset, 0, tableID, 0, 0, 0, 0, 0), 8, nil, false),
	}
	page11 := buildPageBuf(sysrowsetRecs, nil)

	// Page 12: sysschobjs - one user table "Widgets".
	nameBytes := utf16leBytes("Widgets")
	page12 := buildPageBuf([][]byte{
		buildCatalogRecord(sysschobjFixed(tableID, 0, 0, 0, "U", 0, 1), 7, nameBytes, true),
	}, nil)

	// Page 13: syscolpars - Quantity (int), Label (nvarchar).
	quantityName := utf16leBytes("Quantity")
	labelName := utf16leBytes("Label")
	page13 := buildPageBuf([][]byte{
		buildCatalogRecord(syscolparFixed(tableID, 0, 1, xtypeInt, 0, 4, 10, 0, 0, 0, 0, 0, 0, 0), 14, quantityName, true),
		buildCatalogRecord(syscolparFixed(tableID, 0, 2, xtypeNVarChar, 0, 100, 0, 0, 0, 0, 0, 0, 0, 0), 14, labelName, true),
	}, nil)

	// Page 14: sysscalartypes - int, nvarchar.
	intName := utf16leBytes("int")
	nvarcharName := utf16leBytes("nvarchar")
	page14 := buildPageBuf([][]byte{
		buildCatalogRecord(sysscalartypeFixed(1, 0, xtypeInt, 4, 10, 0, 0, 0), 8, intName, true),
		buildCatalogRecord(sysscalartypeFixed(2, 0, xtypeNVarChar, 8000, 0, 0, 0, 0), 8, nvarcharName, true),
	}, nil)

	// Page 15: Widgets' data - one row: Quantity=42, Label="hello".
	quantityFixed := make([]byte, 4)
	putU32(quantityFixed, 0, 42)
	dataRec := buildCatalogRecord(quantityFixed, 2, utf16leBytes("hello"), true)
	page15 := buildPageBuf([][]byte{dataRec}, nil)

	// Boot page (index 9).
	boot := make([]byte, format.PageSize)
	name := utf16leBytes("TestDB")
	padded := make([]byte, format.BootPageNameEnd-format.BootPageNameOff)
	copy(padded, name)
	for i := len(name); i < len(padded); i += 2 {
		padded[i], padded[i+1] = 0x20, 0x20 // '†' = U+2020, LE bytes 0x20 0x20
	}
	copy(boot[format.BootPageNameOff:format.BootPageNameEnd], padded)
	copy(boot[format.BootPageFirstSysIdxOff:], pagePointerBytes(10, 1))

	var stream bytes.Buffer
	for i := 0; i < 9; i++ {
		stream.Write(make([]byte, format.PageSize))
	}
	stream.Write(boot)
	stream.Write(page10)
	stream.Write(page11)
	stream.Write(page12)
	stream.Write(page13)
	stream.Write(page14)
	stream.Write(page15)
	return stream.Bytes()
}

func TestBootstrapAssemblesSchema(t *testing.T) {
	stream := buildTestStream(t)
	r := page.NewReader(bytes.NewReader(stream), 1)

	schema, err := Bootstrap(context.Background(), r)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if schema.DatabaseName != "TestDB" {
		t.Fatalf("database name: got %q, want %q", schema.DatabaseName, "TestDB")
	}

	names := schema.TableNames()
	if len(names) != 1 || names[0] != "Widgets" {
		t.Fatalf("table names: got %v, want [Widgets]", names)
	}

	table, ok := schema.Table("Widgets")
	if !ok {
		t.Fatal("expected Widgets table")
	}
	if len(table.Columns) != 2 {
		t.Fatalf("got %d columns, want 2", len(table.Columns))
	}
	if table.Columns[0].Name != "Quantity" || table.Columns[0].SQLType != "int" {
		t.Fatalf("column 0: got %+v", table.Columns[0])
	}
	if table.Columns[1].Name != "Label" || table.Columns[1].SQLType != "nvarchar" {
		t.Fatalf("column 1: got %+v", table.Columns[1])
	}
	if len(table.DataPages) != 1 || table.DataPages[0].PageID != 15 {
		t.Fatalf("data pages: got %+v", table.DataPages)
	}
}

func TestBootstrapMissingSysrowsetsRootFails(t *testing.T) {
	stream := buildTestStream(t)
	// Corrupt the sysallocunits page (index 10 of the stream, at byte offset
	// 10*PageSize) so the magic auid 327680 no longer appears, forcing the
	// sysrowsets-root lookup to fail. The first record's fixed area (and so
	// its AUID field) starts 4 bytes into the record, right after the
	// status byte and fixed_length_total.
	pageOff := 10 * format.PageSize
	auidOff := pageOff + format.PageHeaderSize + 4
	putU32(stream[auidOff:], 0, 1) // low 32 bits of AUID -> 1, no longer 327680

	r := page.NewReader(bytes.NewReader(stream), 1)
	if _, err := Bootstrap(context.Background(), r); err == nil {
		t.Fatal("expected bootstrap to fail without a sysrowsets root")
	}
}
