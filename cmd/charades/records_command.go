package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"charades/internal/annotations"
	"charades/internal/dataset"
)

func newRecordsCommand(ctx *commandContext) *cobra.Command {
	var splitName string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List annotation records from a split",
		RunE: func(cmd *cobra.Command, args []string) error {
			split, err := dataset.ParseSplit(splitName)
			if err != nil {
				return err
			}
			layout, err := ctx.layout()
			if err != nil {
				return err
			}

			reader, err := dataset.Open(layout, split)
			if err != nil {
				return err
			}
			defer reader.Close()

			var records []annotations.Record
			for reader.Scan() {
				records = append(records, reader.Record())
				if limit > 0 && len(records) >= limit {
					break
				}
			}
			if err := reader.Err(); err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, records)
			}

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				rows = append(rows, []string{
					record.VideoID,
					truncate(record.Scene, 24),
					formatScore(record.Quality),
					strconv.Itoa(len(record.Labels)),
					formatLength(record.Length),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Scene", "Quality", "Actions", "Length"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			fmt.Fprintf(out, "%s from the %s split\n", pluralize(len(records), "record"), split)
			return nil
		},
	}

	cmd.Flags().StringVar(&splitName, "split", string(dataset.SplitTrain), "Split to read (train or test)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum records to list (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit records as JSON")
	return cmd
}
