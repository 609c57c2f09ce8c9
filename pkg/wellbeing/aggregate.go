package wellbeing

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// ErrEmptyDataset is returned when overall statistics are requested for no records.
var ErrEmptyDataset = errors.New("no records to summarize")

// Field selects the numeric value aggregated from each record.
type Field struct {
	Name  string
	Unit  string
	Value func(Record) float64
}

var (
	ScreenTime = Field{Name: "Screen Time", Unit: "hours", Value: func(r Record) float64 { return float64(r.ScreenHours()) }}
	SleepTime  = Field{Name: "Sleep Time", Unit: "hours", Value: func(r Record) float64 { return float64(r.SleepHours()) }}
	MoodRating = Field{Name: "Mood Rating", Unit: "points", Value: func(r Record) float64 { return float64(r.MoodRating()) }}

	MentalHealthIndex = Field{Name: "Mental Health Index", Unit: "points", Value: Record.Index}
)

// Fields lists every aggregatable field.
var Fields = []Field{ScreenTime, SleepTime, MoodRating, MentalHealthIndex}

// ParseField resolves a short or display name ("screen", "sleep", "mood", "index").
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "screen", "screen-time", "screen time", "screen_time":
		return ScreenTime, nil
	case "sleep", "sleep-time", "sleep time", "sleep_time":
		return SleepTime, nil
	case "mood", "mood-rating", "mood rating", "mood_rating", "rating":
		return MoodRating, nil
	case "index", "mental-health-index", "mental health index", "mental_health_index":
		return MentalHealthIndex, nil
	}
	return Field{}, fmt.Errorf("unknown field %q (want screen, sleep, mood or index)", name)
}

// WeekKey is the ISO week bucket for t, e.g. "2024-W07". The year is the ISO
// week-year, so 2024-12-30 falls in "2025-W01".
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// WeeklyAverage is the mean of a field over one ISO week.
type WeeklyAverage struct {
	Week    string  `json:"week"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// WeeklyAverages groups records by ISO week and averages f within each week.
// The result is ordered chronologically by week.
func WeeklyAverages(records []Record, f Field) []WeeklyAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		key := WeekKey(r.Date())
		sums[key] += f.Value(r)
		counts[key]++
	}

	out := make([]WeeklyAverage, 0, len(sums))
	for key, sum := range sums {
		out = append(out, WeeklyAverage{Week: key, Average: sum / float64(counts[key]), Count: counts[key]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}

// AveragesByWeek converts weekly averages into a week → average map.
func AveragesByWeek(weeks []WeeklyAverage) map[string]float64 {
	m := make(map[string]float64, len(weeks))
	for _, w := range weeks {
		m[w.Week] = w.Average
	}
	return m
}

// Summary holds overall statistics of a field.
type Summary struct {
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
	Weeks int     `json:"weeks"`
}

// Summarize computes mean, min, max and count of f over records along with
// the number of distinct ISO weeks they span.
func Summarize(records []Record, f Field) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, ErrEmptyDataset
	}

	s := Summary{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	weeks := make(map[string]struct{})
	for _, r := range records {
		v := f.Value(r)
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		weeks[WeekKey(r.Date())] = struct{}{}
	}
	s.Count = len(records)
	s.Mean = sum / float64(s.Count)
	s.Weeks = len(weeks)
	return s, nil
}

// FieldStatistics pairs the weekly breakdown of a field with its summary.
type FieldStatistics struct {
	Field   string          `json:"field"`
	Unit    string          `json:"unit"`
	Weekly  []WeeklyAverage `json:"weekly"`
	Summary Summary         `json:"summary"`
}

// Statistics computes the weekly averages and overall summary of f together.
func Statistics(records []Record, f Field) (FieldStatistics, error) {
	summary, err := Summarize(records, f)
	if err != nil {
		return FieldStatistics{}, err
	}
	return FieldStatistics{
		Field:   f.Name,
		Unit:    f.Unit,
		Weekly:  WeeklyAverages(records, f),
		Summary: summary,
	}, nil
}
