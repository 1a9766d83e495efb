package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wilhasse/go-mdf"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <file> [table]",
		Short: "Print a table's declared column names",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := mdf.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer db.Close()

			tables := db.TableNames()
			if len(args) == 2 {
				tables = []string{args[1]}
			}

			for _, t := range tables {
				names, ok := db.ColumnNames(t)
				if !ok {
					return fmt.Errorf("%w: %s", errUnknownTable, t)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "table: %s\n", t)
				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.SetHeader([]string{"#", "column"})
				for i, name := range names {
					table.Append([]string{fmt.Sprintf("%d", i), name})
				}
				table.Render()
			}
			return nil
		},
	}
}
