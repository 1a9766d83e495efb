// Package catalog decodes the system-catalog chain (allocation units, row
// sets, schema objects, scalar types, column parameters) and cross-joins
// them into a logical schema: user table names, their columns, and the
// first-page pointers holding each table's rows.
package catalog

import (
	"strings"

	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
	"github.com/wilhasse/go-mdf/value"
)

// SysallocUnit is one sysallocunits row: storage for one rowset of one
// table or index, anchored at PgFirst.
type SysallocUnit struct {
	AUID        int64
	Type        int8
	OwnerID     int64
	Status      int32
	FGID        int16
	PgFirst     page.Pointer
	PgRoot      page.Pointer
	PgFirstIAM  page.Pointer
	PCUsed      int64
	PCData      int64
	PCReserved  int64
	DBFragID    int32
}

// ParseSysallocUnit decodes one Primary record of sysallocunits.
func ParseSysallocUnit(rec record.Record) (SysallocUnit, error) {
	c := rec.NewCursor()
	var u SysallocUnit
	var err error

	if u.AUID, err = c.Int64Required(); err != nil {
		return u, err
	}
	if u.Type, err = c.Int8Required(); err != nil {
		return u, err
	}
	if u.OwnerID, err = c.Int64Required(); err != nil {
		return u, err
	}
	if u.Status, err = c.Int32Required(); err != nil {
		return u, err
	}
	if u.FGID, err = c.Int16Required(); err != nil {
		return u, err
	}
	if u.PgFirst, err = takePointer(c); err != nil {
		return u, err
	}
	if u.PgRoot, err = takePointer(c); err != nil {
		return u, err
	}
	if u.PgFirstIAM, err = takePointer(c); err != nil {
		return u, err
	}
	if u.PCUsed, err = c.Int64Required(); err != nil {
		return u, err
	}
	if u.PCData, err = c.Int64Required(); err != nil {
		return u, err
	}
	if u.PCReserved, err = c.Int64Required(); err != nil {
		return u, err
	}
	// dbfragid: supplemented from original_source/src/sys.rs. Consumed (and
	// kept, unlike the rest of the skipped tail fields) because it costs
	// nothing extra and is occasionally useful for diagnostics.
	if u.DBFragID, err = c.Int32Required(); err != nil {
		return u, err
	}
	return u, nil
}

func takePointer(c *record.Cursor) (page.Pointer, error) {
	b, err := c.FixedBytes(6)
	if err != nil {
		return page.Pointer{}, err
	}
	return page.ParsePointer(b)
}

// SysrowSet is one sysrowsets row, grouping allocation units that together
// hold one table or index partition.
type SysrowSet struct {
	RowsetID  int64
	OwnerType int8
	IDMajor   int32
	IDMinor   int32
	NumPart   int32
	Status    int32
	FGIDFS    int16
	RCRows    int64
}

// ParseSysrowSet decodes one Primary record of sysrowsets.
func ParseSysrowSet(rec record.Record) (SysrowSet, error) {
	c := rec.NewCursor()
	var r SysrowSet
	var err error

	if r.RowsetID, err = c.Int64Required(); err != nil {
		return r, err
	}
	if r.OwnerType, err = c.Int8Required(); err != nil {
		return r, err
	}
	if r.IDMajor, err = c.Int32Required(); err != nil {
		return r, err
	}
	if r.IDMinor, err = c.Int32Required(); err != nil {
		return r, err
	}
	if r.NumPart, err = c.Int32Required(); err != nil {
		return r, err
	}
	if r.Status, err = c.Int32Required(); err != nil {
		return r, err
	}
	if r.FGIDFS, err = c.Int16Required(); err != nil {
		return r, err
	}
	if r.RCRows, err = c.Int64Required(); err != nil {
		return r, err
	}
	return r, nil
}

// Sysschobj is one sysschobjs row: a named schema object. Tables have
// Type == "U".
type Sysschobj struct {
	ID      int32
	Name    string
	NSID    int32
	NSClass int8
	Status  int32
	Type    string
	PID     int32
	PClass  int8
}

// ParseSysschobj decodes one Primary record of sysschobjs.
func ParseSysschobj(rec record.Record) (Sysschobj, error) {
	c := rec.NewCursor()
	var s Sysschobj
	var err error

	if s.ID, err = c.Int32Required(); err != nil {
		return s, err
	}
	nameBytes, _, err := c.VariableRaw()
	if err != nil {
		return s, err
	}
	if s.Name, err = value.DecodeUTF16LE(nameBytes); err != nil {
		return s, err
	}
	if s.NSID, err = c.Int32Required(); err != nil {
		return s, err
	}
	if s.NSClass, err = c.Int8Required(); err != nil {
		return s, err
	}
	if s.Status, err = c.Int32Required(); err != nil {
		return s, err
	}
	typeBytes, err := c.FixedBytes(2)
	if err != nil {
		return s, err
	}
	s.Type = strings.TrimRight(string(typeBytes), " \x00")
	if s.PID, err = c.Int32Required(); err != nil {
		return s, err
	}
	if s.PClass, err = c.Int8Required(); err != nil {
		return s, err
	}
	return s, nil
}

// IsUserTable reports whether this schema object is a user table per the
// catalog-assembly invariant in §3: nsclass == 0, pclass == 1, type == "U".
func (s Sysschobj) IsUserTable() bool {
	return s.NSClass == 0 && s.PClass == 1 && s.Type == "U"
}

// Sysscalartype is one sysscalartypes row, mapping an xtype code to a SQL
// type name used by syscolpar.
type Sysscalartype struct {
	ID           int32
	SchID        int32
	Name         string
	XType        int8
	Length       int16
	Precision    int8
	Scale        int8
	CollationID  int32
	Status       int32
}

// ParseSysscalartype decodes one Primary record of sysscalartypes.
func ParseSysscalartype(rec record.Record) (Sysscalartype, error) {
	c := rec.NewCursor()
	var t Sysscalartype
	var err error

	if t.ID, err = c.Int32Required(); err != nil {
		return t, err
	}
	if t.SchID, err = c.Int32Required(); err != nil {
		return t, err
	}
	nameBytes, _, err := c.VariableRaw()
	if err != nil {
		return t, err
	}
	if t.Name, err = value.DecodeUTF16LE(nameBytes); err != nil {
		return t, err
	}
	if t.XType, err = c.Int8Required(); err != nil {
		return t, err
	}
	if t.Length, err = c.Int16Required(); err != nil {
		return t, err
	}
	if t.Precision, err = c.Int8Required(); err != nil {
		return t, err
	}
	if t.Scale, err = c.Int8Required(); err != nil {
		return t, err
	}
	if t.CollationID, err = c.Int32Required(); err != nil {
		return t, err
	}
	if t.Status, err = c.Int32Required(); err != nil {
		return t, err
	}
	return t, nil
}

// Syscolpar is one syscolpars row: one column of one schema object.
type Syscolpar struct {
	ID          int32
	Number      int16
	ColID       int32
	Name        string
	XType       int8
	UType       int32
	Length      int16
	Precision   int8
	Scale       int8
	CollationID int32
	Status      int32
	MaxInRow    int16
	XMLNS       int32
	Dflt        int32
	Chk         int32
}

// ParseSyscolpar decodes one Primary record of syscolpars. Name is absent
// (left empty) when the record carries no variable-length area at all.
func ParseSyscolpar(rec record.Record) (Syscolpar, error) {
	c := rec.NewCursor()
	var p Syscolpar
	var err error

	if p.ID, err = c.Int32Required(); err != nil {
		return p, err
	}
	if p.Number, err = c.Int16Required(); err != nil {
		return p, err
	}
	if p.ColID, err = c.Int32Required(); err != nil {
		return p, err
	}
	if rec.HasVariableLength {
		nameBytes, _, err := c.VariableRaw()
		if err != nil {
			return p, err
		}
		if p.Name, err = value.DecodeUTF16LE(nameBytes); err != nil {
			return p, err
		}
	}
	if p.XType, err = c.Int8Required(); err != nil {
		return p, err
	}
	if p.UType, err = c.Int32Required(); err != nil {
		return p, err
	}
	if p.Length, err = c.Int16Required(); err != nil {
		return p, err
	}
	if p.Precision, err = c.Int8Required(); err != nil {
		return p, err
	}
	if p.Scale, err = c.Int8Required(); err != nil {
		return p, err
	}
	if p.CollationID, err = c.Int32Required(); err != nil {
		return p, err
	}
	if p.Status, err = c.Int32Required(); err != nil {
		return p, err
	}
	if p.MaxInRow, err = c.Int16Required(); err != nil {
		return p, err
	}
	if p.XMLNS, err = c.Int32Required(); err != nil {
		return p, err
	}
	if p.Dflt, err = c.Int32Required(); err != nil {
		return p, err
	}
	if p.Chk, err = c.Int32Required(); err != nil {
		return p, err
	}
	return p, nil
}
