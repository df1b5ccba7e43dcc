package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abx-navigator/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "abxnav",
	Short: "Browse an antimicrobial reference guide from its JSON content tree",
	Long: `abxnav serves a hierarchical antimicrobial reference guide (parts,
sections, chapters and items described by JSON resources) as navigable HTML
with deep-linkable ?part=&doc= URLs. It can also export the guide as a
static site, validate a content tree and expose the guide to AI agents
over MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
