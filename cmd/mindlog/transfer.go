package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unowned-ai/mindlog/pkg/export"
	"github.com/unowned-ai/mindlog/pkg/flatfile"
	"github.com/unowned-ai/mindlog/pkg/journal"
)

var (
	exportFormatFlag string
	exportOutputFlag string
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import days from a line-oriented journal file",
	Long: `Import days from a file with one line per day:

  date,mood,rating,screen,sleep,journal text,index

Use "-" to read from stdin. Days that already exist are replaced, and when a date
appears more than once in the file the last line wins. The stored index column is
ignored and recomputed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()
			src = f
		}

		h, err := flatfile.ReadHistory(src)
		if err != nil {
			var perr *flatfile.ParseError
			if errors.As(err, &perr) {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return fmt.Errorf("failed to read import file: %w", err)
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		j, err := currentJournal(cmd.Context(), dbConn)
		if err != nil {
			return err
		}

		replaced, err := journal.ImportHistory(cmd.Context(), dbConn, j.ID, h)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		logger.Info("history imported",
			zap.String("journal", j.Name),
			zap.String("source", args[0]),
			zap.Int("days", h.Len()),
			zap.Int("replaced", replaced),
		)

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d days into %s (%d replaced).\n", h.Len(), j.Name, replaced)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a journal as journal lines or an xlsx workbook",
	Long: `Export every logged day of the journal in chronological order.

  --format lines  one line per day, the same format import reads
  --format xlsx   a workbook with an Entries sheet and weekly statistics per field

Output goes to --output, or stdout when it is empty or "-".`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		format := strings.ToLower(exportFormatFlag)
		if format != "lines" && format != "xlsx" {
			return fmt.Errorf("unknown --format %q (want lines or xlsx)", exportFormatFlag)
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		j, err := currentJournal(cmd.Context(), dbConn)
		if err != nil {
			return err
		}
		h, err := journal.LoadHistory(cmd.Context(), dbConn, j.ID)
		if err != nil {
			return fmt.Errorf("failed to load journal: %w", err)
		}

		dst := cmd.OutOrStdout()
		if exportOutputFlag != "" && exportOutputFlag != "-" {
			f, err := os.Create(exportOutputFlag)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer func() {
				if cerr := f.Close(); err == nil {
					err = cerr
				}
			}()
			dst = f
		}

		if format == "xlsx" {
			err = export.WriteWorkbook(dst, j.Name, h)
		} else {
			err = flatfile.WriteHistory(dst, h)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		logger.Info("journal exported",
			zap.String("journal", j.Name),
			zap.String("format", format),
			zap.Int("days", h.Len()),
		)
		if exportOutputFlag != "" && exportOutputFlag != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d days to %s\n", h.Len(), exportOutputFlag)
		}
		return nil
	},
}

func initTransferCmd() {
	exportCmd.Flags().StringVar(&exportFormatFlag, "format", "lines", "Export format: lines or xlsx")
	exportCmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "File to write (default stdout)")
}
