package wellbeing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdict_GoodShape(t *testing.T) {
	r := mustRecord(t, "2024-02-01", MoodHappy, 8, 2, 8)

	want := "Mental Health Assessment:\n\n" + verdictGoodShape
	require.Equal(t, want, Verdict(r))
}

func TestVerdict_FixedOrder(t *testing.T) {
	r := mustRecord(t, "2024-02-01", MoodAngry, 3, 6, 5)

	want := "Mental Health Assessment:\n\n" +
		"Here are personalized suggestions to improve your well-being:\n\n" +
		"1. " + verdictLowSleep + "\n\n" +
		"2. " + verdictAngry + "\n\n" +
		"3. " + verdictScreen + "\n\n" +
		"4. " + verdictLowMood
	require.Equal(t, want, Verdict(r))
	require.Equal(t, Verdict(r), Verdict(r))
}

func TestVerdict_SleepBlocks(t *testing.T) {
	tests := []struct {
		sleep int
		want  []string
	}{
		{sleep: 6, want: []string{verdictLowSleep}},
		{sleep: 7, want: nil},
		{sleep: 9, want: nil},
		{sleep: 10, want: []string{verdictHighSleep}},
	}

	for _, tt := range tests {
		r := mustRecord(t, "2024-02-01", MoodCalm, 8, 1, tt.sleep)
		assert.Equal(t, tt.want, VerdictGenerator.Blocks(r), "sleep=%d", tt.sleep)
	}
}

func TestVerdict_MoodSwitch(t *testing.T) {
	tests := []struct {
		mood Mood
		want []string
	}{
		{mood: MoodAnxious, want: []string{verdictAnxious}},
		{mood: MoodSad, want: []string{verdictSad}},
		{mood: MoodAngry, want: []string{verdictAngry}},
		{mood: MoodHappy, want: nil},
		{mood: MoodEnergetic, want: nil},
		{mood: Mood("Bored"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.mood.String(), func(t *testing.T) {
			r := mustRecord(t, "2024-02-01", tt.mood, 7, 2, 8)
			assert.Equal(t, tt.want, VerdictGenerator.Blocks(r))
		})
	}
}

func TestNutrition(t *testing.T) {
	t.Run("all blocks", func(t *testing.T) {
		r := mustRecord(t, "2024-02-01", MoodSad, 4, 5, 6)
		want := strings.Join([]string{
			"Nutrition Suggestions:",
			nutritionGeneral,
			nutritionSad,
			nutritionLowSleep,
			nutritionScreen,
		}, "\n\n")
		require.Equal(t, want, Nutrition(r))
	})

	t.Run("general only", func(t *testing.T) {
		r := mustRecord(t, "2024-02-01", MoodEnergetic, 9, 1, 8)
		require.Equal(t, "Nutrition Suggestions:\n\n"+nutritionGeneral, Nutrition(r))
	})

	t.Run("high sleep adds nothing", func(t *testing.T) {
		r := mustRecord(t, "2024-02-01", MoodAnxious, 6, 4, 11)
		require.Equal(t, "Nutrition Suggestions:\n\n"+nutritionGeneral+"\n\n"+nutritionAnxious, Nutrition(r))
	})
}

func TestWorkout(t *testing.T) {
	t.Run("energetic", func(t *testing.T) {
		r := mustRecord(t, "2024-02-01", MoodEnergetic, 9, 1, 8)
		want := strings.Join([]string{"Exercise Recommendations:", workoutGeneral, workoutEnergetic, workoutRemember}, "\n\n")
		require.Equal(t, want, Workout(r))
	})

	t.Run("closing always last", func(t *testing.T) {
		r := mustRecord(t, "2024-02-01", MoodAngry, 2, 10, 3)
		want := strings.Join([]string{
			"Exercise Recommendations:",
			workoutGeneral,
			workoutAngry,
			workoutLowSleep,
			workoutScreen,
			workoutRemember,
		}, "\n\n")
		require.Equal(t, want, Workout(r))
	})

	t.Run("calm has no mood block", func(t *testing.T) {
		r := mustRecord(t, "2024-02-01", MoodCalm, 7, 2, 8)
		assert.Empty(t, WorkoutGenerator.Blocks(r))
		assert.True(t, strings.HasSuffix(Workout(r), "Celebrate small improvements and be consistent"))
	})
}

func TestAdvise(t *testing.T) {
	r := mustRecord(t, "2024-02-01", MoodAnxious, 4, 6, 6)
	advice := Advise(r)
	assert.Equal(t, Verdict(r), advice.Verdict)
	assert.Equal(t, Nutrition(r), advice.Nutrition)
	assert.Equal(t, Workout(r), advice.Workout)
}

func TestGenerator_CustomRules(t *testing.T) {
	g := Generator{
		Title:    "Check:",
		Rules:    []Rule{When(func(r Record) bool { return r.MoodRating() > 8 }, "Great day")},
		Numbered: true,
		Fallback: "Nothing to report",
	}

	assert.Equal(t, "Check:\n\nNothing to report", g.Render(mustRecord(t, "2024-02-01", MoodCalm, 5, 0, 8)))
	assert.Equal(t, "Check:\n\n1. Great day", g.Render(mustRecord(t, "2024-02-01", MoodCalm, 9, 0, 8)))
}
