package wellbeing

import "strings"

// Mood is the label a user picks for the day. Values outside the known set are
// kept verbatim and behave as neutral everywhere.
type Mood string

const (
	MoodHappy        Mood = "Happy"
	MoodSad          Mood = "Sad"
	MoodAngry        Mood = "Angry"
	MoodCalm         Mood = "Calm"
	MoodAnxious      Mood = "Anxious"
	MoodEnergetic    Mood = "Energetic"
	MoodNotSpecified Mood = "Not specified"
)

// Moods lists the selectable labels in display order.
var Moods = []Mood{MoodHappy, MoodSad, MoodAngry, MoodCalm, MoodAnxious, MoodEnergetic}

// IsKnown reports whether m belongs to the fixed label set.
func (m Mood) IsKnown() bool {
	switch m {
	case MoodHappy, MoodSad, MoodAngry, MoodCalm, MoodAnxious, MoodEnergetic, MoodNotSpecified:
		return true
	default:
		return false
	}
}

// Impact is the adjustment applied to the base index for this mood.
func (m Mood) Impact() float64 {
	switch m {
	case MoodHappy, MoodCalm:
		return 0.2
	case MoodEnergetic:
		return 0.1
	case MoodSad, MoodAnxious:
		return -0.1
	case MoodAngry:
		return -0.2
	default:
		return 0.0
	}
}

func (m Mood) String() string {
	return string(m)
}

// ParseMood maps user input onto a known label ignoring case and surrounding
// whitespace. Empty input means no label was picked. Anything else is returned
// unchanged so it can be stored and later treated as neutral.
func ParseMood(s string) Mood {
	s = strings.TrimSpace(s)
	if s == "" {
		return MoodNotSpecified
	}
	for _, m := range Moods {
		if strings.EqualFold(s, string(m)) {
			return m
		}
	}
	switch strings.ToLower(s) {
	case "not specified", "not-specified", "none":
		return MoodNotSpecified
	}
	return Mood(s)
}
