package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abx-navigator/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content tree",
	Long:  `Loads the manifest and every part and document it reaches, and reports anything the navigator could not display.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg, nil)

		loader, err := newLoaderFromConfig(cfg, logger, nil)
		if err != nil {
			return err
		}

		report, err := content.Check(cmd.Context(), loader, cfg.ManifestPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d parts, %d documents, %d items\n", report.Parts, report.Documents, report.Items)
		if report.OK() {
			fmt.Fprintln(out, "No problems found.")
			return nil
		}
		for _, p := range report.Problems {
			fmt.Fprintf(out, "  %s\n", p)
		}
		return fmt.Errorf("%d problems found", len(report.Problems))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
