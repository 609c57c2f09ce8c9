package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/unowned-ai/mindlog/pkg/config"
	pkgdb "github.com/unowned-ai/mindlog/pkg/db"
	"github.com/unowned-ai/mindlog/pkg/journal"
	"github.com/unowned-ai/mindlog/pkg/utils"
	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

// openDB opens the configured database and brings its schema up to date.
func openDB() (*sql.DB, error) {
	dbPath, err := utils.ResolveAndEnsureDBPath(cfg.DB)
	if err != nil {
		return nil, err
	}

	dbConn, err := pkgdb.OpenDBConnection(dbPath, cfg.WAL, cfg.Sync)
	if err != nil {
		return nil, err
	}
	if err := pkgdb.UpgradeDB(dbConn, dbPath, pkgdb.TargetSchemaVersion, logger); err != nil {
		dbConn.Close()
		return nil, err
	}
	return dbConn, nil
}

// currentJournal resolves --journal by ID or name. The default journal is
// created on first use; any other name must exist.
func currentJournal(ctx context.Context, dbConn *sql.DB) (journal.Journal, error) {
	ref := cfg.Journal
	if ref == "" {
		ref = config.DefaultJournal
	}

	j, err := journal.ResolveJournal(ctx, dbConn, ref)
	if errors.Is(err, journal.ErrJournalNotFound) && ref == config.DefaultJournal {
		logger.Info("creating default journal", zap.String("journal", ref))
		return journal.EnsureJournal(ctx, dbConn, ref)
	}
	if errors.Is(err, journal.ErrJournalNotFound) {
		return journal.Journal{}, fmt.Errorf("journal not found: %s", ref)
	}
	if err != nil {
		return journal.Journal{}, fmt.Errorf("failed to get journal: %w", err)
	}
	return j, nil
}

// parseDayArg parses an optional YYYY-MM-DD argument, defaulting to today.
func parseDayArg(args []string) (time.Time, error) {
	if len(args) == 0 || args[0] == "" {
		return wellbeing.Day(time.Now()), nil
	}
	return wellbeing.ParseDay(args[0])
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printJournal(w io.Writer, j journal.Journal) {
	fmt.Fprintln(w, "Journal Details:")
	fmt.Fprintf(w, "ID:          %s\n", j.ID)
	fmt.Fprintf(w, "Name:        %s\n", j.Name)
	fmt.Fprintf(w, "Description: %s\n", j.Description)
	fmt.Fprintf(w, "Active:      %t\n", j.Active)
	fmt.Fprintf(w, "Created At:  %s\n", formatTimestamp(j.CreatedAt))
	fmt.Fprintf(w, "Updated At:  %s\n", formatTimestamp(j.UpdatedAt))
}

func printRecord(w io.Writer, r wellbeing.Record, tags []string) {
	fmt.Fprintln(w, wellbeing.FormatRecord(r))
	if len(tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(tags, ", "))
	}
}

func formatTimestamp(t time.Time) string {
	return t.Local().Format(time.RFC3339)
}
