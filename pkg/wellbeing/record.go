package wellbeing

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical day format used as the history key.
	DateLayout = "2006-01-02"

	// MaxHours bounds screen and sleep hours for a single day.
	MaxHours = 24
)

// ValidationError reports day input that must be rejected before a Record is
// built.
type ValidationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%d): %s", e.Field, e.Value, e.Reason)
}

// Input is the raw data for one day as supplied by the caller.
type Input struct {
	Date        time.Time
	Mood        Mood
	MoodRating  int
	ScreenHours int
	SleepHours  int
	Journal     string
}

// Validate checks the preconditions NewRecord enforces.
func (in Input) Validate() error {
	if in.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "date is required"}
	}
	if err := checkHours("screen time", in.ScreenHours); err != nil {
		return err
	}
	return checkHours("sleep time", in.SleepHours)
}

func checkHours(field string, hours int) error {
	if hours < 0 || hours > MaxHours {
		return &ValidationError{Field: field, Value: hours, Reason: fmt.Sprintf("must be between 0 and %d hours", MaxHours)}
	}
	return nil
}

// Record is one logged day together with its derived index. The zero value is
// not a valid record; use NewRecord.
type Record struct {
	in    Input
	index float64
}

// NewRecord validates in and computes its index.
func NewRecord(in Input) (Record, error) {
	if err := in.Validate(); err != nil {
		return Record{}, err
	}
	in.Date = Day(in.Date)
	if strings.TrimSpace(string(in.Mood)) == "" {
		in.Mood = MoodNotSpecified
	}
	return Record{
		in:    in,
		index: ComputeIndex(in.MoodRating, in.SleepHours, in.ScreenHours, in.Mood),
	}, nil
}

func (r Record) Date() time.Time  { return r.in.Date }
func (r Record) Mood() Mood       { return r.in.Mood }
func (r Record) MoodRating() int  { return r.in.MoodRating }
func (r Record) ScreenHours() int { return r.in.ScreenHours }
func (r Record) SleepHours() int  { return r.in.SleepHours }
func (r Record) Journal() string  { return r.in.Journal }
func (r Record) Index() float64   { return r.index }

// Key is the record's date formatted with DateLayout.
func (r Record) Key() string { return r.in.Date.Format(DateLayout) }

// Input returns a copy of the inputs; pass a modified copy to NewRecord to
// derive an updated record.
func (r Record) Input() Input { return r.in }

type recordJSON struct {
	Date              string  `json:"date"`
	Mood              string  `json:"mood"`
	MoodRating        int     `json:"mood_rating"`
	ScreenHours       int     `json:"screen_hours"`
	SleepHours        int     `json:"sleep_hours"`
	Journal           string  `json:"journal,omitempty"`
	MentalHealthIndex float64 `json:"mental_health_index"`
}

// MarshalJSON exposes the record, including its derived index.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Date:              r.Key(),
		Mood:              r.in.Mood.String(),
		MoodRating:        r.in.MoodRating,
		ScreenHours:       r.in.ScreenHours,
		SleepHours:        r.in.SleepHours,
		Journal:           r.in.Journal,
		MentalHealthIndex: r.index,
	})
}

// Day truncates t to its calendar day at UTC midnight, keeping the wall-clock
// date of t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}
