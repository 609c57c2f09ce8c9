package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindlog/pkg/journal"
	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

var (
	onlyFlag  string
	fieldFlag string
)

var adviceCmd = &cobra.Command{
	Use:   "advice [YYYY-MM-DD]",
	Short: "Show the assessment, nutrition and exercise advice for a day",
	Long: `Show the mental health assessment, nutrition advice and exercise recommendations
for a logged day. Without a date the most recent logged day is used.`,
	Args: cobra.MaximumNArgs(1),
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

		var r wellbeing.Record
		if len(args) == 0 {
			h, err := journal.LoadHistory(cmd.Context(), dbConn, j.ID)
			if err != nil {
				return fmt.Errorf("failed to load journal: %w", err)
			}
			latest, ok := h.Latest()
			if !ok {
				return errors.New("no logged days yet")
			}
			r = latest
		} else {
			day, err := wellbeing.ParseDay(args[0])
			if err != nil {
				return err
			}
			r, err = journal.GetRecord(cmd.Context(), dbConn, j.ID, day)
			if errors.Is(err, journal.ErrRecordNotFound) {
				return fmt.Errorf("no entry for %s", args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to get day: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		switch strings.ToLower(onlyFlag) {
		case "":
			advice := wellbeing.Advise(r)
			fmt.Fprintf(out, "%s\n\n%s\n\n%s\n", advice.Verdict, advice.Nutrition, advice.Workout)
		case "verdict":
			fmt.Fprintln(out, wellbeing.Verdict(r))
		case "nutrition":
			fmt.Fprintln(out, wellbeing.Nutrition(r))
		case "workout":
			fmt.Fprintln(out, wellbeing.Workout(r))
		default:
			return fmt.Errorf("unknown --only value %q (want verdict, nutrition or workout)", onlyFlag)
		}
		return nil
	},
}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Explain how the mental health index is calculated",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), wellbeing.IndexGuide)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show weekly averages and overall statistics for a field",
	Long:  `Show weekly averages and the overall average, minimum, maximum and counts of screen time, sleep time, mood rating or the index.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		field, h, err := loadField(cmd)
		if err != nil {
			return err
		}

		stats, err := h.Statistics(field)
		if errors.Is(err, wellbeing.ErrEmptyDataset) {
			fmt.Fprintln(cmd.OutOrStdout(), "No logged days yet, nothing to summarize.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to compute statistics: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Weekly Average %s:\n", stats.Field)
		printWeeks(cmd, stats.Weekly, stats.Unit)
		fmt.Fprintln(out)
		fmt.Fprintln(out, wellbeing.FormatStatistics(stats))
		return nil
	},
}

var weeksCmd = &cobra.Command{
	Use:   "weeks",
	Short: "Show weekly averages for a field",
	RunE: func(cmd *cobra.Command, args []string) error {
		field, h, err := loadField(cmd)
		if err != nil {
			return err
		}

		weeks := h.WeeklyAverages(field)
		if len(weeks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No logged days yet.")
			return nil
		}
		printWeeks(cmd, weeks, field.Unit)
		return nil
	},
}

func loadField(cmd *cobra.Command) (wellbeing.Field, *wellbeing.History, error) {
	field, err := wellbeing.ParseField(fieldFlag)
	if err != nil {
		return wellbeing.Field{}, nil, err
	}

	dbConn, err := openDB()
	if err != nil {
		return wellbeing.Field{}, nil, err
	}
	defer dbConn.Close()

	j, err := currentJournal(cmd.Context(), dbConn)
	if err != nil {
		return wellbeing.Field{}, nil, err
	}
	h, err := journal.LoadHistory(cmd.Context(), dbConn, j.ID)
	if err != nil {
		return wellbeing.Field{}, nil, fmt.Errorf("failed to load journal: %w", err)
	}
	return field, h, nil
}

func printWeeks(cmd *cobra.Command, weeks []wellbeing.WeeklyAverage, unit string) {
	for _, w := range weeks {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-13s %6.2f %s (%d entries)\n", wellbeing.WeekLabel(w.Week), w.Average, unit, w.Count)
	}
}

func initAnalysisCmd() {
	adviceCmd.Flags().StringVar(&onlyFlag, "only", "", "Show only one part: verdict, nutrition or workout")

	for _, c := range []*cobra.Command{statsCmd, weeksCmd} {
		c.Flags().StringVar(&fieldFlag, "field", "index", "Field to aggregate: screen, sleep, mood or index")
	}
}
