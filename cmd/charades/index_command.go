package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"charades/internal/dataset"
	"charades/internal/index"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	var splitName string

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Import annotation records into the SQLite index",
		Long: "Parse the annotation CSVs and load them into a local SQLite index so\n" +
			"show and stats queries run without re-reading the dataset.",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := ctx.layout()
			if err != nil {
				return err
			}

			splits := []dataset.Split{dataset.SplitTrain, dataset.SplitTest}
			if splitName != "all" {
				split, err := dataset.ParseSplit(splitName)
				if err != nil {
					return err
				}
				splits = []dataset.Split{split}
			}

			path, err := ctx.indexPath()
			if err != nil {
				return err
			}
			store, err := index.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			for _, split := range splits {
				reader, err := dataset.Open(layout, split)
				if err != nil {
					return err
				}
				count, err := store.ImportSplit(cmd.Context(), reader)
				reader.Close()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Indexed %s from the %s split\n", pluralize(count, "record"), split)
			}
			fmt.Fprintf(out, "Index written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&splitName, "split", "all", "Split to index (train, test, or all)")
	return cmd
}
