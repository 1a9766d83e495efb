// Package mdf is a read-only reader for the on-disk page file format used
// by a widely deployed relational database engine (file extension .mdf).
// Given such a file it exposes the logical schema (database name, table
// names, column names) and streams each table's rows as typed values,
// without running or depending on the originating database server.
//
// The library is organized into logical groups of functionality:
//
// Byte layout and low-level decoding:
//   - format/: page geometry constants, little-endian readers, sentinel errors
//   - page/: Page (header + slot array), PagePointer, the forward-only caching Reader
//   - record/: record header, null bitmap, fixed/variable column cursor
//
// Typed values and catalog:
//   - value/: the Value sum type and its decimal/datetime/UUID/string codecs
//   - catalog/: sysallocunits/sysrowsets/sysschobjs/sysscalartypes/syscolpars,
//     the bootstrap algorithm, and the resulting logical Table/Column schema
//
// Basic usage:
//
//	db, _ := mdf.Open(context.Background(), "AWLT2005.mdf")
//	defer db.Close()
//
//	for _, name := range db.TableNames() {
//	    fmt.Println(name)
//	}
//
//	rows, _ := db.Rows("Address")
//	defer rows.Close()
//	for {
//	    row, ok, err := rows.Next(context.Background())
//	    if err != nil || !ok {
//	        break
//	    }
//	    fmt.Println(row.Values())
//	}
package mdf
