package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/abx-navigator/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the guide's parts, documents and items as tools for AI agents.`,
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
		msgs, err := newMessages(cfg)
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		logger.Info("abxnav MCP server started on stdio",
			slog.String("content", cfg.ContentSource),
			slog.String("manifest", cfg.ManifestPath),
		)

		srv := mcpserver.NewServer(loader, msgs, cfg.ManifestPath)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
