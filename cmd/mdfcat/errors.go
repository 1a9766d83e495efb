package main

import "errors"

// errUnknownTable is returned when a command is given a table name the
// opened database does not know about. Exit code 2, per §6.
var errUnknownTable = errors.New("mdfcat: unknown table")

func exitCodeFor(err error) int {
	if errors.Is(err, errUnknownTable) {
		return 2
	}
	return 1
}
