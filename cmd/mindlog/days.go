package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unowned-ai/mindlog/pkg/journal"
	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

var (
	fromFlag string
	toFlag   string
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "Log and browse days",
	Long:  `Log a day (mood, sleep, screen time, journal text), look days up, and tag them.`,
}

var logDayCmd = &cobra.Command{
	Use:   "log [YYYY-MM-DD]",
	Short: "Log a day",
	Long: `Log mood, mood rating, screen time and sleep time for a day (today if no date is given).
Logging a date that already exists replaces it. The mental health index and advice are printed afterwards.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayArg(args)
		if err != nil {
			return err
		}

		mood, _ := cmd.Flags().GetString("mood")
		rating, _ := cmd.Flags().GetInt("rating")
		screen, _ := cmd.Flags().GetInt("screen")
		sleep, _ := cmd.Flags().GetInt("sleep")
		text, _ := cmd.Flags().GetString("text")
		tagsStr, _ := cmd.Flags().GetString("tags")

		if err := checkRange("mood rating", rating, 0, 10); err != nil {
			return err
		}
		if err := checkRange("screen time", screen, 0, wellbeing.MaxHours); err != nil {
			return err
		}
		if err := checkRange("sleep time", sleep, 0, wellbeing.MaxHours); err != nil {
			return err
		}

		r, err := wellbeing.NewRecord(wellbeing.Input{
			Date:        day,
			Mood:        wellbeing.ParseMood(mood),
			MoodRating:  rating,
			ScreenHours: screen,
			SleepHours:  sleep,
			Journal:     text,
		})
		if err != nil {
			return err
		}
		if !r.Mood().IsKnown() {
			cmd.PrintErrf("Warning: mood '%s' is not one of %s; it is stored as-is and does not change the index.\n", r.Mood(), moodChoices())
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

		replaced, err := journal.SaveRecord(cmd.Context(), dbConn, j.ID, r)
		if err != nil {
			return fmt.Errorf("failed to save day: %w", err)
		}
		logger.Info("day logged",
			zap.String("journal", j.Name),
			zap.String("day", r.Key()),
			zap.Float64("index", r.Index()),
			zap.Bool("replaced", replaced),
		)

		var lastTaggingError error
		for _, tag := range splitList(tagsStr) {
			if err := journal.TagRecord(cmd.Context(), dbConn, j.ID, r.Date(), tag); err != nil {
				lastTaggingError = fmt.Errorf("failed to apply tag '%s': %w", tag, err)
				cmd.PrintErrln(lastTaggingError)
			}
		}

		out := cmd.OutOrStdout()
		if replaced {
			fmt.Fprintf(out, "Entry for %s replaced.\n\n", r.Key())
		} else {
			fmt.Fprintf(out, "Entry for %s saved.\n\n", r.Key())
		}
		tags, err := journal.ListTagsForRecord(cmd.Context(), dbConn, j.ID, r.Date())
		if err != nil {
			cmd.PrintErrf("Failed to retrieve tags for %s: %v\n", r.Key(), err)
		}
		printRecord(out, r, tags)
		fmt.Fprintln(out)
		fmt.Fprintln(out, wellbeing.Verdict(r))

		if lastTaggingError != nil {
			return fmt.Errorf("day saved, but some tags failed to apply: %w", lastTaggingError)
		}
		return nil
	},
}

var getDayCmd = &cobra.Command{
	Use:   "get [YYYY-MM-DD]",
	Short: "Show a logged day",
	Long:  `Show a logged day (today if no date is given) with its tags.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayArg(args)
		if err != nil {
			return err
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

		r, err := journal.GetRecord(cmd.Context(), dbConn, j.ID, day)
		if errors.Is(err, journal.ErrRecordNotFound) {
			return fmt.Errorf("no entry for %s", day.Format(wellbeing.DateLayout))
		}
		if err != nil {
			return fmt.Errorf("failed to get day: %w", err)
		}
		tags, err := journal.ListTagsForRecord(cmd.Context(), dbConn, j.ID, day)
		if err != nil {
			return fmt.Errorf("failed to get tags for day: %w", err)
		}

		printRecord(cmd.OutOrStdout(), r, tags)
		return nil
	},
}

var listDaysCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged days",
	Long:  `List logged days in chronological order, optionally within --from / --to (inclusive).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var from, to time.Time
		var err error
		if fromFlag != "" {
			if from, err = wellbeing.ParseDay(fromFlag); err != nil {
				return err
			}
		}
		if toFlag != "" {
			if to, err = wellbeing.ParseDay(toFlag); err != nil {
				return err
			}
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

		records, err := journal.ListRecords(cmd.Context(), dbConn, j.ID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list days: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No entries found.")
			return nil
		}
		for i, r := range records {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, wellbeing.FormatRecord(r))
		}
		return nil
	},
}

var tagDayCmd = &cobra.Command{
	Use:   "tag [YYYY-MM-DD] [tag...]",
	Short: "Add tags to a logged day",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editTags(cmd, args, journal.TagRecord)
	},
}

var untagDayCmd = &cobra.Command{
	Use:   "untag [YYYY-MM-DD] [tag...]",
	Short: "Remove tags from a logged day",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editTags(cmd, args, journal.DetachTag)
	},
}

func editTags(cmd *cobra.Command, args []string, edit func(context.Context, *sql.DB, uuid.UUID, time.Time, string) error) error {
	day, err := wellbeing.ParseDay(args[0])
	if err != nil {
		return err
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

	for _, tag := range args[1:] {
		err := edit(cmd.Context(), dbConn, j.ID, day, tag)
		switch {
		case errors.Is(err, journal.ErrRecordNotFound):
			return fmt.Errorf("no entry for %s", args[0])
		case errors.Is(err, journal.ErrTagNotFound):
			return fmt.Errorf("tag '%s' is not on %s", tag, args[0])
		case err != nil:
			return fmt.Errorf("failed to update tag '%s': %w", tag, err)
		}
	}

	tags, err := journal.ListTagsForRecord(cmd.Context(), dbConn, j.ID, day)
	if err != nil {
		return fmt.Errorf("failed to get tags for day: %w", err)
	}
	if len(tags) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s has no tags.\n", args[0])
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s tags: %s\n", args[0], strings.Join(tags, ", "))
	return nil
}

func initDaysCmd() {
	logDayCmd.Flags().String("mood", "", "Mood label ("+moodChoices()+"); free text is kept as is")
	logDayCmd.Flags().Int("rating", 0, "Mood rating from 0 to 10 (required)")
	logDayCmd.Flags().Int("screen", 0, "Screen time in whole hours, 0 to 24 (required)")
	logDayCmd.Flags().Int("sleep", 0, "Sleep time in whole hours, 0 to 24 (required)")
	logDayCmd.Flags().String("text", "", "Free-form journal text")
	logDayCmd.Flags().String("tags", "", "Comma-separated list of tags for the day")
	logDayCmd.MarkFlagRequired("rating")
	logDayCmd.MarkFlagRequired("screen")
	logDayCmd.MarkFlagRequired("sleep")

	listDaysCmd.Flags().StringVar(&fromFlag, "from", "", "First day to include (YYYY-MM-DD)")
	listDaysCmd.Flags().StringVar(&toFlag, "to", "", "Last day to include (YYYY-MM-DD)")

	daysCmd.AddCommand(
		logDayCmd,
		getDayCmd,
		listDaysCmd,
		tagDayCmd,
		untagDayCmd,
	)
}

func moodChoices() string {
	labels := make([]string, len(wellbeing.Moods))
	for i, m := range wellbeing.Moods {
		labels[i] = string(m)
	}
	return strings.Join(labels, ", ")
}
