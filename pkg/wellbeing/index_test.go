package wellbeing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIndex_Bounds(t *testing.T) {
	t.Run("ceiling", func(t *testing.T) {
		require.Equal(t, 10.0, ComputeIndex(10, 8, 0, MoodHappy))
	})

	t.Run("floor", func(t *testing.T) {
		require.Equal(t, 0.0, ComputeIndex(0, 24, 24, MoodAngry))
	})

	t.Run("always within range", func(t *testing.T) {
		moods := append([]Mood{MoodNotSpecified, Mood("Bored")}, Moods...)
		for _, mood := range moods {
			for rating := 0; rating <= 10; rating++ {
				for sleep := 0; sleep <= MaxHours; sleep++ {
					for screen := 0; screen <= MaxHours; screen++ {
						got := ComputeIndex(rating, sleep, screen, mood)
						if got < 0 || got > IndexMax {
							t.Fatalf("ComputeIndex(%d, %d, %d, %s) = %v, outside [0,10]", rating, sleep, screen, mood, got)
						}
					}
				}
			}
		}
	})
}

func TestComputeIndex_Weights(t *testing.T) {
	// mood 0.5*0.4 + sleep (6/7)*0.3 + screen 0.9*0.3 + calm 0.2
	want := (0.5*0.4 + (6.0/7.0)*0.3 + 0.9*0.3 + 0.2) * 10
	assert.InDelta(t, want, ComputeIndex(5, 6, 6, MoodCalm), 1e-9)

	neutral := ComputeIndex(5, 8, 2, MoodNotSpecified)
	assert.InDelta(t, 8.0, neutral, 1e-9)
	assert.Equal(t, neutral, ComputeIndex(5, 8, 2, Mood("Bored")), "unknown moods are neutral")
	assert.Greater(t, ComputeIndex(5, 8, 2, MoodEnergetic), neutral)
	assert.Less(t, ComputeIndex(5, 8, 2, MoodSad), neutral)
	assert.Less(t, ComputeIndex(5, 8, 2, MoodAngry), ComputeIndex(5, 8, 2, MoodAnxious))
}

func TestComputeIndex_Deterministic(t *testing.T) {
	a := ComputeIndex(7, 5, 9, MoodAnxious)
	b := ComputeIndex(7, 5, 9, MoodAnxious)
	require.Equal(t, a, b)
}

func TestSleepScore(t *testing.T) {
	assert.Equal(t, 1.0, SleepScore(7))
	assert.Equal(t, 1.0, SleepScore(8))
	assert.Equal(t, 1.0, SleepScore(9))
	assert.Less(t, SleepScore(6), SleepScore(7))
	assert.Less(t, SleepScore(10), 1.0)
	assert.Equal(t, 0.0, SleepScore(0))
	assert.Equal(t, 0.0, SleepScore(24))
}

func TestScreenScore(t *testing.T) {
	assert.Equal(t, 1.0, ScreenScore(0))
	assert.Equal(t, 1.0, ScreenScore(4))
	assert.InDelta(t, 0.95, ScreenScore(5), 1e-9)
	assert.Equal(t, 0.0, ScreenScore(24))
}
