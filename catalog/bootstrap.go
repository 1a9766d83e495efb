package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/wilhasse/go-mdf/format"
	"github.com/wilhasse/go-mdf/internal/mdflog"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
	"github.com/wilhasse/go-mdf/value"
)

const sysallocunitSysrowsetsAUID = 327680

// The three catalog-bootstrap rowsets: sysschobjs, syscolpars,
// sysscalartypes, each identified by (idmajor, idminor==1).
const (
	idMajorSysschobjs     = 34
	idMajorSyscolpars     = 41
	idMajorSysscalartypes = 50
)

// BootPage is the decoded page index 9: database name and the pointer that
// anchors the sysallocunits chain.
type BootPage struct {
	DatabaseName    string
	FirstSysIndexes page.Pointer
}

func stripDagger(r rune) rune {
	if r == '†' {
		return -1
	}
	return r
}

// ParseBootPage decodes the fixed boot-page layout: the UTF-16LE database
// name at bytes 148..404 (padded with the dagger rune, stripped here), and
// the first_sys_indexes pointer at bytes 612..618.
func ParseBootPage(p *page.Page) (BootPage, error) {
	nameBytes := p.Buf[format.BootPageNameOff:format.BootPageNameEnd]
	name, err := value.DecodeUTF16LE(nameBytes)
	if err != nil {
		return BootPage{}, fmt.Errorf("boot page database name: %w", err)
	}
	name = strings.Map(stripDagger, name)
	name = strings.TrimRight(name, "\x00")

	ptrBytes := p.Buf[format.BootPageFirstSysIdxOff : format.BootPageFirstSysIdxOff+format.PagePointerSize]
	ptr, err := page.ParsePointer(ptrBytes)
	if err != nil {
		return BootPage{}, fmt.Errorf("boot page first_sys_indexes: %w", err)
	}
	return BootPage{DatabaseName: name, FirstSysIndexes: ptr}, nil
}

// walkChain follows next_page_pointer starting at first, decoding every
// Primary record on each page with decode and skipping (and logging) every
// other record type. It stops when a page's next pointer is nil or when the
// next pointer fails to strictly advance (a defensive loop guard: no cycles
// are expected in heap chains).
func walkChain(ctx context.Context, r *page.Reader, first page.Pointer, tableForLog string, decode func(record.Record) error) error {
	if first.IsNil() {
		return nil
	}
	ptr := first
	lastIndex := int64(-1)
	for !ptr.IsNil() {
		if int64(ptr.PageID) <= lastIndex {
			break
		}
		lastIndex = int64(ptr.PageID)

		p, err := r.ReadUntil(ctx, ptr)
		if err != nil {
			return fmt.Errorf("walk chain for %s: %w", tableForLog, err)
		}
		recs, errs := p.Records()
		for _, derr := range errs {
			mdflog.DroppedRow(tableForLog, derr)
		}
		for _, rec := range recs {
			if rec.Type != format.RecordPrimary {
				mdflog.SkippedRecord(tableForLog, rec.Type.String())
				continue
			}
			if err := decode(rec); err != nil {
				mdflog.DroppedRow(tableForLog, err)
				continue
			}
		}
		ptr = p.Header.NextPagePointer
	}
	return nil
}

// Table is the logical schema for one user table: declared column order
// and the first-page pointers of its data partitions, in numpart order.
type Table struct {
	Name      string
	Columns   []value.Column
	DataPages []page.Pointer
}

// Schema is the fully assembled catalog: database name and every user
// table's logical definition.
type Schema struct {
	DatabaseName string
	Tables       []*Table
}

// TableNames returns table names in discovery order (the caller sorts if a
// stable order matters; per §4.6 the facade itself makes no promise beyond
// discovery order).
func (s *Schema) TableNames() []string {
	names := make([]string, len(s.Tables))
	for i, t := range s.Tables {
		names[i] = t.Name
	}
	return names
}

// Table looks up a table definition by name.
func (s *Schema) Table(name string) (*Table, bool) {
	for _, t := range s.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Bootstrap runs the full system-catalog bootstrap algorithm against r,
// which must be positioned at page 0. It skips pages 0..8, decodes page 9
// as the boot page, walks the sysallocunits and sysrowsets chains, locates
// the three catalog-bootstrap rowsets (sysschobjs/syscolpars/
// sysscalartypes), and assembles the logical schema for every user table.
func Bootstrap(ctx context.Context, r *page.Reader) (*Schema, error) {
	if err := r.SkipPages(ctx, 9); err != nil {
		return nil, fmt.Errorf("bootstrap: skip to boot page: %w", err)
	}
	bootPg, err := r.ReadNext(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: read boot page: %w", err)
	}
	boot, err := ParseBootPage(bootPg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: parse boot page: %w", err)
	}

	var allocUnits []SysallocUnit
	if err := walkChain(ctx, r, boot.FirstSysIndexes, "sysallocunits", func(rec record.Record) error {
		u, err := ParseSysallocUnit(rec)
		if err != nil {
			return err
		}
		allocUnits = append(allocUnits, u)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	var sysrowsetsRoot page.Pointer
	found := false
	for _, u := range allocUnits {
		if u.AUID == sysallocunitSysrowsetsAUID {
			sysrowsetsRoot = u.PgFirst
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("bootstrap: sysallocunit auid=%d (sysrowsets root) not found", sysallocunitSysrowsetsAUID)
	}

	var rowSets []SysrowSet
	if err := walkChain(ctx, r, sysrowsetsRoot, "sysrowsets", func(rec record.Record) error {
		rs, err := ParseSysrowSet(rec)
		if err != nil {
			return err
		}
		rowSets = append(rowSets, rs)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	catalogRoot := func(idMajor int32) (page.Pointer, error) {
		for _, rs := range rowSets {
			if rs.IDMajor == idMajor && rs.IDMinor == 1 {
				for _, u := range allocUnits {
					if u.AUID == rs.RowsetID && u.Type == 1 {
						return u.PgFirst, nil
					}
				}
				return page.Pointer{}, fmt.Errorf("bootstrap: no sysallocunit owning rowset %d (idmajor=%d)", rs.RowsetID, idMajor)
			}
		}
		return page.Pointer{}, fmt.Errorf("bootstrap: no sysrowset with idmajor=%d idminor=1", idMajor)
	}

	schobjsRoot, err := catalogRoot(idMajorSysschobjs)
	if err != nil {
		return nil, err
	}
	colparsRoot, err := catalogRoot(idMajorSyscolpars)
	if err != nil {
		return nil, err
	}
	scalarsRoot, err := catalogRoot(idMajorSysscalartypes)
	if err != nil {
		return nil, err
	}

	var schobjs []Sysschobj
	if err := walkChain(ctx, r, schobjsRoot, "sysschobjs", func(rec record.Record) error {
		s, err := ParseSysschobj(rec)
		if err != nil {
			return err
		}
		schobjs = append(schobjs, s)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	var colpars []Syscolpar
	if err := walkChain(ctx, r, colparsRoot, "syscolpars", func(rec record.Record) error {
		c, err := ParseSyscolpar(rec)
		if err != nil {
			return err
		}
		colpars = append(colpars, c)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	var scalars []Sysscalartype
	if err := walkChain(ctx, r, scalarsRoot, "sysscalartypes", func(rec record.Record) error {
		t, err := ParseSysscalartype(rec)
		if err != nil {
			return err
		}
		scalars = append(scalars, t)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	scalarByXType := make(map[int8]Sysscalartype, len(scalars))
	for _, t := range scalars {
		scalarByXType[t.XType] = t
	}

	schema := &Schema{DatabaseName: boot.DatabaseName}
	for _, so := range schobjs {
		if !so.IsUserTable() {
			continue
		}
		table := &Table{Name: so.Name}

		type ordered struct {
			colID int32
			col   value.Column
		}
		var cols []ordered
		for _, cp := range colpars {
			if cp.Number != 0 || cp.ID != so.ID || cp.Name == "" {
				continue
			}
			st, ok := scalarByXType[cp.XType]
			if !ok {
				mdflog.DroppedRow(so.Name, fmt.Errorf("column %s: xtype %d not in sysscalartypes", cp.Name, cp.XType))
				continue
			}
			cols = append(cols, ordered{
				colID: cp.ColID,
				col: value.Column{
					Name:      cp.Name,
					SQLType:   st.Name,
					MaxLength: int(cp.Length),
					Precision: int(cp.Precision),
					Scale:     int(cp.Scale),
				},
			})
		}
		sort.Slice(cols, func(i, j int) bool { return cols[i].colID < cols[j].colID })
		for _, oc := range cols {
			table.Columns = append(table.Columns, oc.col)
		}

		type partPage struct {
			numPart int32
			ptr     page.Pointer
		}
		rowsetIDs := make(map[int64]int32) // rowsetID -> numpart
		for _, rs := range rowSets {
			if rs.IDMajor == so.ID && rs.IDMinor <= 1 {
				rowsetIDs[rs.RowsetID] = rs.NumPart
			}
		}
		var parts []partPage
		for _, u := range allocUnits {
			if u.Type != 1 {
				continue
			}
			if numPart, ok := rowsetIDs[u.OwnerID]; ok {
				parts = append(parts, partPage{numPart: numPart, ptr: u.PgFirst})
			}
		}
		sort.Slice(parts, func(i, j int) bool { return parts[i].numPart < parts[j].numPart })
		for _, pp := range parts {
			table.DataPages = append(table.DataPages, pp.ptr)
		}

		schema.Tables = append(schema.Tables, table)
	}

	return schema, nil
}
