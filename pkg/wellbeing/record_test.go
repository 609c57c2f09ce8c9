package wellbeing

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, day string, mood Mood, rating, screen, sleep int) Record {
	t.Helper()
	d, err := ParseDay(day)
	require.NoError(t, err)
	r, err := NewRecord(Input{Date: d, Mood: mood, MoodRating: rating, ScreenHours: screen, SleepHours: sleep})
	require.NoError(t, err)
	return r
}

func TestNewRecord_Validation(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{name: "screen above 24", in: Input{Date: day, ScreenHours: 25, SleepHours: 8}, field: "screen time"},
		{name: "sleep above 24", in: Input{Date: day, ScreenHours: 2, SleepHours: 30}, field: "sleep time"},
		{name: "negative sleep", in: Input{Date: day, SleepHours: -1}, field: "sleep time"},
		{name: "missing date", in: Input{SleepHours: 8}, field: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord(tt.in)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	t.Run("24 hours is accepted", func(t *testing.T) {
		_, err := NewRecord(Input{Date: day, ScreenHours: 24, SleepHours: 24})
		require.NoError(t, err)
	})
}

func TestNewRecord_DerivesIndex(t *testing.T) {
	r := mustRecord(t, "2024-03-01", MoodHappy, 10, 0, 8)
	assert.Equal(t, 10.0, r.Index())
	assert.Equal(t, "2024-03-01", r.Key())

	in := r.Input()
	in.Mood = MoodAngry
	in.MoodRating = 0
	updated, err := NewRecord(in)
	require.NoError(t, err)
	assert.Equal(t, ComputeIndex(0, 8, 0, MoodAngry), updated.Index())
	assert.Equal(t, 10.0, r.Index(), "original record is unchanged")
}

func TestNewRecord_NormalisesDayAndMood(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	r, err := NewRecord(Input{Date: time.Date(2024, 5, 2, 23, 30, 0, 0, loc), SleepHours: 8, Journal: "line one\nline two"})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), r.Date())
	assert.Equal(t, MoodNotSpecified, r.Mood())
	assert.Equal(t, "line one\nline two", r.Journal())
}

func TestParseMood(t *testing.T) {
	assert.Equal(t, MoodHappy, ParseMood("happy"))
	assert.Equal(t, MoodAnxious, ParseMood("  ANXIOUS "))
	assert.Equal(t, MoodNotSpecified, ParseMood(""))
	assert.Equal(t, MoodNotSpecified, ParseMood("Not-specified"))
	assert.Equal(t, Mood("Bored"), ParseMood("Bored"))
	assert.False(t, ParseMood("Bored").IsKnown())
	assert.True(t, MoodNotSpecified.IsKnown())
}

func TestRecord_MarshalJSON(t *testing.T) {
	r := mustRecord(t, "2024-01-05", MoodCalm, 6, 3, 7)

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "2024-01-05", decoded["date"])
	assert.Equal(t, "Calm", decoded["mood"])
	assert.InDelta(t, r.Index(), decoded["mental_health_index"], 1e-9)
}
