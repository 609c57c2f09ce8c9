package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindlog/pkg/journal"
	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

var (
	searchTagsFlag  string
	searchMoodsFlag string
	searchFromFlag  string
	searchToFlag    string
	searchTopNFlag  int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search logged days by tags, or by mood and date range",
	Long: `Search logged days. With --tags, days are ranked by the number of matching tags,
most recent first on ties. Otherwise days are filtered by --mood, --from and --to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		j, err := currentJournal(cmd.Context(), dbConn)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if tags := splitList(searchTagsFlag); len(tags) > 0 {
			results, err := journal.SearchRecordsByTags(cmd.Context(), dbConn, j.ID, tags)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			if searchTopNFlag > 0 && searchTopNFlag < len(results) {
				results = results[:searchTopNFlag]
			}
			if len(results) == 0 {
				fmt.Fprintln(out, "No matching days found.")
				return nil
			}

			fmt.Fprintf(out, "Found %d matching days:\n", len(results))
			for i, m := range results {
				fmt.Fprintf(out, "\n--- Day %d ---\n", i+1)
				fmt.Fprintf(out, "Match Count: %d\n", m.MatchCount)
				fmt.Fprintln(out, wellbeing.FormatRecord(m.Record))
			}
			return nil
		}

		filter := journal.Filter{}
		for _, m := range splitList(searchMoodsFlag) {
			filter.Moods = append(filter.Moods, wellbeing.ParseMood(m))
		}
		if searchFromFlag != "" {
			if filter.From, err = wellbeing.ParseDay(searchFromFlag); err != nil {
				return err
			}
		}
		if searchToFlag != "" {
			if filter.To, err = wellbeing.ParseDay(searchToFlag); err != nil {
				return err
			}
		}
		if len(filter.Moods) == 0 && filter.From.IsZero() && filter.To.IsZero() {
			return errors.New("give --tags, or at least one of --mood, --from, --to")
		}

		records, err := journal.FilterRecords(cmd.Context(), dbConn, j.ID, filter)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if searchTopNFlag > 0 && searchTopNFlag < len(records) {
			records = records[len(records)-searchTopNFlag:]
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No matching days found.")
			return nil
		}

		fmt.Fprintf(out, "Found %d matching days:\n", len(records))
		for _, r := range records {
			fmt.Fprintln(out)
			fmt.Fprintln(out, wellbeing.FormatRecord(r))
		}
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags",
	Long:  `List every tag that has been attached to a day in any journal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		tags, err := journal.ListTags(cmd.Context(), dbConn)
		if err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(tags) == 0 {
			fmt.Fprintln(out, "No tags found.")
			return nil
		}

		fmt.Fprintln(out, "Tag | Created At | Updated At")
		fmt.Fprintln(out, "----------------------------------------")
		for _, t := range tags {
			fmt.Fprintf(out, "%s | %s | %s\n", t.Tag, formatTimestamp(t.CreatedAt), formatTimestamp(t.UpdatedAt))
		}
		return nil
	},
}

func initSearchCmd() {
	searchCmd.Flags().StringVar(&searchTagsFlag, "tags", "", "Comma-separated tags to match")
	searchCmd.Flags().StringVar(&searchMoodsFlag, "mood", "", "Comma-separated mood labels to match")
	searchCmd.Flags().StringVar(&searchFromFlag, "from", "", "First day to include (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchToFlag, "to", "", "Last day to include (YYYY-MM-DD)")
	searchCmd.Flags().IntVar(&searchTopNFlag, "top", 0, "Return only the top N results (0 means all)")
}
