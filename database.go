package mdf

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/wilhasse/go-mdf/catalog"
	"github.com/wilhasse/go-mdf/internal/mdflog"
	"github.com/wilhasse/go-mdf/page"
)

// SetLogger wires a zerolog.Logger into every package of go-mdf. Unset, the
// library is silent (zerolog's disabled level); logging only happens at the
// two "drop and log" points the design calls for: a row dropped because a
// column failed to decode, and a non-Primary record skipped where a Primary
// was expected.
func SetLogger(l zerolog.Logger) {
	mdflog.Set(l)
}

// Database is a handle onto one opened .mdf stream. It owns the page cache
// and is not safe for concurrent use: a row iterator borrows it exclusively
// for its lifetime, matching the single-threaded cooperative model the
// format's bootstrap algorithm assumes.
type Database struct {
	reader *page.Reader
	schema *catalog.Schema
	closer io.Closer
}

// Open opens the file at path and runs the system-catalog bootstrap.
func Open(ctx context.Context, path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mdf: open %s: %w", path, err)
	}
	db, err := FromReader(ctx, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	db.closer = f
	return db, nil
}

// FromReader runs the system-catalog bootstrap against an already-open
// sequential byte stream positioned at page 0. The original design skips
// pages 0..8 unconditionally before treating page 9 as the boot page; this
// mirrors that exactly rather than seeking, preserving the forward-only
// constraint from the first byte read.
func FromReader(ctx context.Context, r io.Reader) (*Database, error) {
	pr := page.NewReader(r, 1)
	schema, err := catalog.Bootstrap(ctx, pr)
	if err != nil {
		return nil, fmt.Errorf("mdf: bootstrap: %w", err)
	}
	return &Database{reader: pr, schema: schema}, nil
}

// Close releases the underlying file, if Open (rather than FromReader)
// opened it.
func (db *Database) Close() error {
	if db.closer != nil {
		return db.closer.Close()
	}
	return nil
}

// DatabaseName returns the boot page's decoded database name.
func (db *Database) DatabaseName() string {
	return db.schema.DatabaseName
}

// TableNames returns user table names in catalog discovery order.
func (db *Database) TableNames() []string {
	return db.schema.TableNames()
}

// ColumnNames returns table's declared column order, or false if table is
// not a known user table.
func (db *Database) ColumnNames(table string) ([]string, bool) {
	t, ok := db.schema.Table(table)
	if !ok {
		return nil, false
	}
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names, true
}

// Rows returns a lazy, forward-only row iterator over table, or false if
// table is not a known user table.
func (db *Database) Rows(table string) (*RowIter, bool) {
	t, ok := db.schema.Table(table)
	if !ok {
		return nil, false
	}
	return newRowIter(db.reader, t), true
}
