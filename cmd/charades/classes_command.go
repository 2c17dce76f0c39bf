package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"charades/internal/classes"
)

type classView struct {
	Index int    `json:"index"`
	Code  string `json:"code"`
	Name  string `json:"name"`
}

func newClassesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the action class vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := ctx.layout()
			if err != nil {
				return err
			}
			table, err := classes.LoadFile(layout.ClassFile())
			if err != nil {
				return err
			}

			views := make([]classView, 0, table.Size())
			for i := 0; i < table.Size(); i++ {
				code, _ := table.Code(i)
				name, _ := table.Name(i)
				views = append(views, classView{Index: i, Code: code, Name: name})
			}

			if asJSON {
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{strconv.Itoa(v.Index), v.Code, v.Name})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Index", "Code", "Action"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d classes\n", len(views))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the vocabulary as JSON")
	return cmd
}
