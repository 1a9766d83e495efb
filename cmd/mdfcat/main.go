// Command mdfcat is the CLI collaborator described in §6: given a .mdf
// file it prints the logical schema or streams a table's rows.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mdfcat",
		Short:         "Read tables and rows out of a .mdf database file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTablesCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newRowsCmd())
	return root
}
