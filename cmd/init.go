package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abx-navigator/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize abxnav configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the content source, language and export settings, and writes a .abxnav.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
