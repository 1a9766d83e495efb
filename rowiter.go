package mdf

import (
	"context"
	"fmt"

	"github.com/wilhasse/go-mdf/catalog"
	"github.com/wilhasse/go-mdf/format"
	"github.com/wilhasse/go-mdf/internal/mdflog"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
	"github.com/wilhasse/go-mdf/value"
)

// RowIter is a pull-style, forward-only row stream. Next advances one row
// at a time, decoding rows lazily as their page is reached; Close stops
// further page I/O, which is the entirety of this reader's cancellation
// contract, since there is no background work to tear down.
type RowIter struct {
	reader *page.Reader
	table  *catalog.Table

	partIdx int          // index into table.DataPages
	nextPtr page.Pointer  // next page to load in the current heap chain
	havePtr bool          // whether nextPtr is meaningful (vs. exhausted)

	curPage *page.Page
	recs    []record.Record
	recIdx  int

	closed bool
}

func newRowIter(r *page.Reader, t *catalog.Table) *RowIter {
	it := &RowIter{reader: r, table: t}
	if len(t.DataPages) > 0 {
		it.nextPtr = t.DataPages[0]
		it.havePtr = true
	}
	return it
}

// Close stops the iterator; subsequent Next calls return (Row{}, false, nil).
func (it *RowIter) Close() error {
	it.closed = true
	return nil
}

// Next decodes and returns the next row. ok is false (with a nil error) when
// the table's rows are exhausted or the iterator has been closed.
func (it *RowIter) Next(ctx context.Context) (Row, bool, error) {
	for {
		if it.closed {
			return Row{}, false, nil
		}
		if err := ctx.Err(); err != nil {
			return Row{}, false, err
		}

		if it.curPage == nil {
			if !it.havePtr || it.nextPtr.IsNil() {
				it.partIdx++
				if it.partIdx >= len(it.table.DataPages) {
					it.closed = true
					return Row{}, false, nil
				}
				it.nextPtr = it.table.DataPages[it.partIdx]
				it.havePtr = true
			}

			p, err := it.reader.ReadUntil(ctx, it.nextPtr)
			if err != nil {
				return Row{}, false, fmt.Errorf("mdf: rows(%s): %w", it.table.Name, err)
			}
			recs, errs := p.Records()
			for _, derr := range errs {
				mdflog.DroppedRow(it.table.Name, derr)
			}
			it.curPage = p
			it.recs = recs
			it.recIdx = 0
			it.nextPtr = p.Header.NextPagePointer
		}

		if it.recIdx >= len(it.recs) {
			it.curPage = nil
			continue
		}
		rec := it.recs[it.recIdx]
		it.recIdx++

		if rec.Type != format.RecordPrimary {
			mdflog.SkippedRecord(it.table.Name, rec.Type.String())
			continue
		}

		row, err := decodeRow(it.table, rec)
		if err != nil {
			mdflog.DroppedRow(it.table.Name, err)
			continue
		}
		return row, true, nil
	}
}

func decodeRow(t *catalog.Table, rec record.Record) (Row, error) {
	c := rec.NewCursor()
	names := make([]string, len(t.Columns))
	values := make([]value.Value, len(t.Columns))
	for i, col := range t.Columns {
		v, err := col.Decode(c)
		if err != nil {
			return Row{}, fmt.Errorf("column %s: %w", col.Name, err)
		}
		names[i] = col.Name
		values[i] = v
	}
	return Row{names: names, values: values}, nil
}
