package wellbeing

import "math"

const (
	moodWeight   = 0.4
	sleepWeight  = 0.3
	screenWeight = 0.3

	sleepOptimalMin = 7
	sleepOptimalMax = 9
	screenBudget    = 4

	// IndexMax is the upper bound of the mental-health index.
	IndexMax = 10.0
)

// SleepScore rates sleep hours in [0,1]; 7 to 9 hours is optimal.
func SleepScore(hours int) float64 {
	switch {
	case hours >= sleepOptimalMin && hours <= sleepOptimalMax:
		return 1.0
	case hours < sleepOptimalMin:
		return float64(hours) / 7.0
	default:
		return 1.0 - float64(hours-sleepOptimalMax)/15.0
	}
}

// ScreenScore rates screen hours in [0,1]; up to 4 hours costs nothing.
func ScreenScore(hours int) float64 {
	if hours <= screenBudget {
		return 1.0
	}
	return math.Max(0, 1.0-float64(hours-screenBudget)/20.0)
}

// ComputeIndex derives the mental-health index in [0,10] from a day's inputs.
// Out-of-range combinations are absorbed by clamping the adjusted score to
// [0,1] before scaling.
func ComputeIndex(moodRating, sleepHours, screenHours int, mood Mood) float64 {
	moodScore := float64(moodRating) / 10.0
	base := moodScore*moodWeight + SleepScore(sleepHours)*sleepWeight + ScreenScore(screenHours)*screenWeight
	adjusted := math.Max(0, math.Min(1, base+mood.Impact()))
	return adjusted * IndexMax
}
