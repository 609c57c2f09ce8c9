//go:build tui

package main

import (
	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindlog/pkg/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show terminal UI",
	Long:  `Display an interactive terminal UI for browsing journals, days, advice and statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dynamicWidth, _ := cmd.Flags().GetBool("dynamic-width")

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		return tui.ShowTUI(dbConn, dynamicWidth)
	},
}

func init() {
	tuiCmd.Flags().Bool("dynamic-width", false, "Widen the focused column")
	rootCmd.AddCommand(tuiCmd)
}
