package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abx-navigator/internal/export"
	"github.com/ziadkadry99/abx-navigator/internal/progress"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the guide as a static HTML site",
	Long:  `Writes index.html plus one page per part and per document, linked with relative paths, so the guide can be hosted without the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportOutput != "" {
			cfg.Export.OutputDir = exportOutput
		}
		logger := newLogger(cfg, nil)

		loader, err := newLoaderFromConfig(cfg, logger, nil)
		if err != nil {
			return err
		}
		msgs, err := newMessages(cfg)
		if err != nil {
			return err
		}

		exp := export.New(loader, export.Options{
			OutputDir:    cfg.Export.OutputDir,
			ManifestPath: cfg.ManifestPath,
			Filter:       export.Filter{Include: cfg.Export.Include, Exclude: cfg.Export.Exclude},
			Messages:     msgs,
			Reporter:     progress.NewReporter(cfg.Export.OutputDir),
			Logger:       logger,
		})

		res, err := exp.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Exported %d pages to %s\n", len(res.Pages), cfg.Export.OutputDir)
		if len(res.Failed) > 0 {
			fmt.Fprintf(os.Stderr, "%d resources could not be loaded:\n", len(res.Failed))
			for _, f := range res.Failed {
				fmt.Fprintf(os.Stderr, "  - %s\n", f)
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (overrides export.output_dir)")
	rootCmd.AddCommand(exportCmd)
}
