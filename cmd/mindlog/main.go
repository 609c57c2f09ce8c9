package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mindlog "github.com/unowned-ai/mindlog/pkg"
	"github.com/unowned-ai/mindlog/pkg/config"
	pkgdb "github.com/unowned-ai/mindlog/pkg/db"
	"github.com/unowned-ai/mindlog/pkg/logging"
)

var (
	// Resolved in PersistentPreRunE from flags, MINDLOG_* env, config.yaml and defaults.
	cfg    config.Config
	logger = zap.NewNop()

	configDir string
)

var rootCmd = &cobra.Command{
	Use:           "mindlog",
	Short:         "A daily well-being journal with a mental health index and lifestyle advice.",
	Long:          ``,
	Version:       fmt.Sprintf("v%s", mindlog.Version),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New(configDir)
		if err := config.BindFlags(v, cmd.Flags()); err != nil {
			return fmt.Errorf("failed to bind flags: %w", err)
		}
		loaded, err := config.Load(v)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		logger = logging.New(logging.Options{
			Level:  cfg.LogLevel,
			File:   cfg.LogFile,
			Output: cmd.ErrOrStderr(),
		})
		logger.Debug("configuration loaded",
			zap.String("db", cfg.DB),
			zap.Bool("wal", cfg.WAL),
			zap.String("sync", cfg.Sync),
			zap.String("journal", cfg.Journal),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:   fmt.Sprintf("completion %s", strings.Join(completionShells, "|")),
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for mindlog.

The command prints a completion script to stdout. You can source it in your shell
or install it to the appropriate location for your shell to enable completions permanently.

Examples:

  Bash (current shell):
    $ source <(mindlog completion bash)

  Bash (persist):
    $ mindlog completion bash > /etc/bash_completion.d/mindlog

  Zsh:
    $ mindlog completion zsh > "${fpath[1]}/_mindlog"

  Fish:
    $ mindlog completion fish | source
    $ mindlog completion fish > ~/.config/fish/completions/mindlog.fish

  PowerShell:
    PS> mindlog completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mindlog",
	Long:  `All software has versions. This is mindlog's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), mindlog.Version)
	},
}

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the mindlog database",
	Long:  `Provides commands for managing the mindlog SQLite database, including schema upgrades.`,
}

var dbUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the mindlog database schema to the latest version for the journaldb component",
	Long: `Connects to the SQLite database (--db, MINDLOG_DB or the platform default) and applies any
necessary schema migrations to bring the journaldb component up to the current application schema version.
If the database does not exist or is uninitialized for this component, it will be created
and initialized with the latest schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "Attempting to upgrade journaldb component in database at: %s (WAL: %t, Sync: %s)\n",
			cfg.DB, cfg.WAL, cfg.Sync)

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Database is at schema version %d.\n", pkgdb.TargetSchemaVersion)
		return nil
	},
}

func initCmd() {
	// Persistent flags on rootCmd so all commands can use them; bound to config keys in PersistentPreRunE
	rootCmd.PersistentFlags().String("db", "", "Path to the database file (uses system-specific default if not provided)")
	rootCmd.PersistentFlags().Bool("wal", false, "Enable SQLite WAL (Write-Ahead Logging) mode")
	rootCmd.PersistentFlags().String("sync", "FULL", "SQLite synchronous pragma (OFF, NORMAL, FULL, EXTRA)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file, rotated")
	rootCmd.PersistentFlags().String("journal", "", "Journal name or ID (default \"default\")")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding config.yaml (default: user config dir)")

	dbCmd.AddCommand(dbUpgradeCmd)

	initJournalsCmd()
	initDaysCmd()
	initAnalysisCmd()
	initSearchCmd()
	initTransferCmd()
	rootCmd.AddCommand(completionCmd, versionCmd, dbCmd, journalsCmd, daysCmd,
		adviceCmd, guideCmd, statsCmd, weeksCmd, searchCmd, tagsCmd, importCmd, exportCmd, mcpCmd)
}

func main() {
	initCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
