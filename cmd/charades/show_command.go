package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"charades/internal/annotations"
	"charades/internal/classes"
	"charades/internal/dataset"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var splitName string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <video-id>",
		Short: "Show one annotation record in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID := strings.TrimSpace(args[0])
			layout, err := ctx.layout()
			if err != nil {
				return err
			}

			splits := []dataset.Split{dataset.SplitTrain, dataset.SplitTest}
			if splitName != "" {
				split, err := dataset.ParseSplit(splitName)
				if err != nil {
					return err
				}
				splits = []dataset.Split{split}
			}

			table, err := classes.LoadFile(layout.ClassFile())
			if err != nil {
				return err
			}

			for _, split := range splits {
				record, found, err := findRecord(layout, split, table, videoID)
				if err != nil {
					return err
				}
				if found {
					if asJSON {
						return writeJSON(cmd, record)
					}
					printRecord(cmd, record, split, table)
					return nil
				}
			}
			return fmt.Errorf("record %q not found in %s", videoID, describeSplits(splits))
		},
	}

	cmd.Flags().StringVar(&splitName, "split", "", "Restrict the search to one split (train or test)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the record as JSON")
	return cmd
}

func findRecord(layout dataset.Layout, split dataset.Split, table *classes.Table, videoID string) (annotations.Record, bool, error) {
	reader, err := dataset.OpenWithClasses(layout, split, table)
	if err != nil {
		return annotations.Record{}, false, err
	}
	defer reader.Close()

	for reader.Scan() {
		if reader.Record().VideoID == videoID {
			return reader.Record(), true, nil
		}
	}
	return annotations.Record{}, false, reader.Err()
}

func printRecord(cmd *cobra.Command, record annotations.Record, split dataset.Split, table *classes.Table) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:          %s (%s split)\n", record.VideoID, split)
	fmt.Fprintf(out, "Video:       %s\n", record.VideoPath)
	fmt.Fprintf(out, "Subject:     %s\n", record.Subject)
	fmt.Fprintf(out, "Scene:       %s\n", record.Scene)
	fmt.Fprintf(out, "Quality:     %s\n", formatScore(record.Quality))
	fmt.Fprintf(out, "Relevance:   %s\n", formatScore(record.Relevance))
	fmt.Fprintf(out, "Verified:    %s\n", record.Verified)
	fmt.Fprintf(out, "Length:      %s\n", formatLength(record.Length))
	fmt.Fprintf(out, "Script:      %s\n", record.Script)
	fmt.Fprintf(out, "Objects:     %s\n", strings.Join(record.Objects, ", "))

	fmt.Fprintf(out, "Actions:     %s\n", pluralize(len(record.Labels), "annotation"))
	for i, classIndex := range record.Labels {
		code, _ := table.Code(classIndex)
		name, _ := table.Name(classIndex)
		fmt.Fprintf(out, "  %s %-40s %s\n", code, name, formatTiming(record.ActionTimings[i]))
	}

	if len(record.Descriptions) > 0 {
		fmt.Fprintln(out, "Descriptions:")
		for _, description := range record.Descriptions {
			fmt.Fprintf(out, "  - %s\n", description)
		}
	}
}

func describeSplits(splits []dataset.Split) string {
	names := make([]string, 0, len(splits))
	for _, split := range splits {
		names = append(names, string(split))
	}
	return strings.Join(names, " or ")
}
