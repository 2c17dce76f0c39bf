package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"charades/internal/download"
	"charades/internal/fetch"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download and extract the dataset bundles",
		Long: "Download the annotation and video bundles for the configured variant,\n" +
			"extract them under the dataset root, and verify the layout. Bundles\n" +
			"already present in the cache are reused; a complete layout skips the\n" +
			"download entirely.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			downloader := download.New(&http.Client{}, logger)
			if noProgress {
				downloader.SetProgress(false)
			}

			fetcher := fetch.New(cfg, downloader, logger)
			if err := fetcher.EnsureLocal(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Dataset ready under %s\n", cfg.Paths.RootDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the download progress bar")
	return cmd
}
