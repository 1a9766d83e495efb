package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wilhasse/go-mdf"
)

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables <file>",
		Short: "List the user tables in a .mdf file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := mdf.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "database: %s\n", db.DatabaseName())

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"table"})
			for _, name := range db.TableNames() {
				table.Append([]string{name})
			}
			table.Render()
			return nil
		},
	}
}
