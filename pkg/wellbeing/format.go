package wellbeing

import (
	"fmt"
	"strings"
)

// FormatRecord renders a day as shown in the history listing.
func FormatRecord(r Record) string {
	return fmt.Sprintf("Date: %s\nMood: %s (%d/10)\nMental Health Index: %.1f/10\nScreen Time: %d hours\nSleep Time: %d hours\nJournal Entry: %s",
		r.Key(), r.Mood(), r.MoodRating(), r.Index(), r.ScreenHours(), r.SleepHours(), r.Journal())
}

// FormatStatistics renders the overall summary block of a statistics view.
func FormatStatistics(s FieldStatistics) string {
	return fmt.Sprintf("Overall %s Statistics:\nAverage: %.2f %s\nMinimum: %.2f %s\nMaximum: %.2f %s\nNumber of entries: %d\nNumber of weeks: %d",
		s.Field,
		s.Summary.Mean, s.Unit,
		s.Summary.Min, s.Unit,
		s.Summary.Max, s.Unit,
		s.Summary.Count, s.Summary.Weeks)
}

// WeekLabel turns "2024-W07" into "Week 07 2024" for chart axes.
func WeekLabel(key string) string {
	year, week, ok := strings.Cut(key, "-W")
	if !ok {
		return key
	}
	return fmt.Sprintf("Week %s %s", week, year)
}
