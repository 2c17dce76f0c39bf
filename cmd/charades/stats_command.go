package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"charades/internal/classes"
	"charades/internal/index"
)

type statsView struct {
	Records int                  `json:"records"`
	Scenes  []index.SceneCount   `json:"scenes"`
	Classes []classCountView     `json:"classes"`
	Quality []index.QualityCount `json:"quality"`
}

type classCountView struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var top int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the indexed corpus",
		Long: "Report record counts, the most frequent scenes and action classes, and\n" +
			"the quality score distribution. Run `charades index` first to populate\n" +
			"the index.",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := ctx.layout()
			if err != nil {
				return err
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

			queryCtx := cmd.Context()
			total, err := store.Count(queryCtx, "")
			if err != nil {
				return err
			}
			if total == 0 {
				return fmt.Errorf("index at %s is empty; run `charades index` first", path)
			}

			scenes, err := store.SceneCounts(queryCtx, top)
			if err != nil {
				return err
			}
			classCounts, err := store.ClassCounts(queryCtx, top)
			if err != nil {
				return err
			}
			quality, err := store.QualityHistogram(queryCtx)
			if err != nil {
				return err
			}

			table, err := classes.LoadFile(layout.ClassFile())
			if err != nil {
				return err
			}
			classViews := make([]classCountView, 0, len(classCounts))
			for _, cc := range classCounts {
				code, codeErr := table.Code(cc.ClassIndex)
				name, nameErr := table.Name(cc.ClassIndex)
				if codeErr != nil || nameErr != nil {
					code = strconv.Itoa(cc.ClassIndex)
					name = "(unknown class)"
				}
				classViews = append(classViews, classCountView{Code: code, Name: name, Count: cc.Count})
			}

			if asJSON {
				return writeJSON(cmd, statsView{
					Records: total,
					Scenes:  scenes,
					Classes: classViews,
					Quality: quality,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s indexed\n\n", pluralize(total, "record"))

			titler := cases.Title(language.Und)
			sceneRows := make([][]string, 0, len(scenes))
			for _, sc := range scenes {
				sceneRows = append(sceneRows, []string{
					titler.String(strings.ToLower(sc.Scene)),
					strconv.Itoa(sc.Count),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Scene", "Records"},
				sceneRows,
				[]columnAlignment{alignLeft, alignRight},
			))

			classRows := make([][]string, 0, len(classViews))
			for _, cv := range classViews {
				classRows = append(classRows, []string{cv.Code, truncate(cv.Name, 48), strconv.Itoa(cv.Count)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Code", "Action", "Annotations"},
				classRows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))

			qualityRows := make([][]string, 0, len(quality))
			for _, qc := range quality {
				qualityRows = append(qualityRows, []string{formatScore(qc.Quality), strconv.Itoa(qc.Count)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Quality", "Records"},
				qualityRows,
				[]columnAlignment{alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "How many scenes and classes to list (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit statistics as JSON")
	return cmd
}
