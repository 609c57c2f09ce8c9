package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unowned-ai/mindlog/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the mindlog MCP server (stdio)",
	Long: `Start a Model Context Protocol (MCP) server that exposes mindlog journals, day logging,
advice, statistics, tags and search as MCP tools via STDIO.

Tools that take a 'journal' argument fall back to --journal (or MINDLOG_JOURNAL),
which is created on first use.

The --db flag is optional. If not provided, a system-specific default location will be used:
- Windows: %USERPROFILE%\AppData\Roaming\mindlog\mindlog.db
- macOS: ~/Library/Application Support/mindlog/mindlog.db
- Linux: ~/.local/share/mindlog/mindlog.db

Example:
  mindlog mcp
  mindlog mcp --db mindlog.db --journal sam`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := mcp.NewMindlogMCPServer(mcp.Options{
			DBPath:         cfg.DB,
			WAL:            cfg.WAL,
			Sync:           cfg.Sync,
			DefaultJournal: cfg.Journal,
			Logger:         logger.Named("mcp"),
		})
		if err != nil {
			return fmt.Errorf("failed to create mindlog MCP server: %w", err)
		}
		defer srv.Close()

		// Logs go to stderr so we don't contaminate the JSON-RPC stream on stdout.
		logger.Info("mindlog MCP server started",
			zap.String("db", srv.DbPath),
			zap.Bool("wal", cfg.WAL),
			zap.String("sync", cfg.Sync),
			zap.String("journal", cfg.Journal),
		)

		// Blocks until stdio closes.
		return srv.Start()
	},
}
