package main

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wilhasse/go-mdf"
)

func newRowsCmd() *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "rows <file> [table]",
		Short: "Stream a table's rows",
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
				iter, ok := db.Rows(t)
				if !ok {
					return fmt.Errorf("%w: %s", errUnknownTable, t)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "table: %s\n", t)
				var runErr error
				switch format {
				case "json":
					runErr = printRowsJSON(cmd, iter, limit)
				default:
					runErr = printRowsText(cmd, iter, names, limit)
				}
				iter.Close()
				if runErr != nil {
					return runErr
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows to print (0 = unlimited)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

func printRowsText(cmd *cobra.Command, iter *mdf.RowIter, names []string, limit int) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(names)

	count := 0
	for {
		if limit > 0 && count >= limit {
			break
		}
		row, ok, err := iter.Next(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		cells := make([]string, len(names))
		for i, name := range names {
			v, _ := row.Value(name)
			cells[i] = v.Display()
		}
		table.Append(cells)
		count++
	}
	table.Render()
	return nil
}

func printRowsJSON(cmd *cobra.Command, iter *mdf.RowIter, limit int) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	count := 0
	for {
		if limit > 0 && count >= limit {
			break
		}
		row, ok, err := iter.Next(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		record := make(map[string]string, len(row.Values()))
		for _, nv := range row.Values() {
			record[nv.Name] = nv.Value.Display()
		}
		if err := enc.Encode(record); err != nil {
			return err
		}
		count++
	}
	return nil
}
