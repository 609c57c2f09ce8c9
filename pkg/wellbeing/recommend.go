package wellbeing

import (
	"fmt"
	"strings"
)

// Rule yields at most one advisory block for a record.
type Rule func(r Record) (block string, ok bool)

// When emits block if cond holds.
func When(cond func(Record) bool, block string) Rule {
	return func(r Record) (string, bool) {
		if cond(r) {
			return block, true
		}
		return "", false
	}
}

// ByMood emits the block mapped to the record's mood. Moods missing from the
// table produce nothing.
func ByMood(table map[Mood]string) Rule {
	return func(r Record) (string, bool) {
		block, ok := table[r.Mood()]
		return block, ok && block != ""
	}
}

// Generator renders advisory text. Intro is always emitted, then every
// triggered rule in declared order, then Closing. When Numbered is set the
// triggered blocks become a 1-indexed list introduced by ListIntro, and
// Fallback replaces the list if no rule fired.
type Generator struct {
	Title     string
	Intro     string
	Rules     []Rule
	Closing   string
	Numbered  bool
	ListIntro string
	Fallback  string
}

// Blocks returns the triggered conditional blocks in order.
func (g Generator) Blocks(r Record) []string {
	var blocks []string
	for _, rule := range g.Rules {
		if block, ok := rule(r); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Render formats the full advisory text for r.
func (g Generator) Render(r Record) string {
	var sections []string
	if g.Intro != "" {
		sections = append(sections, g.Intro)
	}

	blocks := g.Blocks(r)
	switch {
	case g.Numbered && len(blocks) == 0:
		if g.Fallback != "" {
			sections = append(sections, g.Fallback)
		}
	case g.Numbered:
		if g.ListIntro != "" {
			sections = append(sections, g.ListIntro)
		}
		for i, block := range blocks {
			sections = append(sections, fmt.Sprintf("%d. %s", i+1, block))
		}
	default:
		sections = append(sections, blocks...)
	}

	if g.Closing != "" {
		sections = append(sections, g.Closing)
	}
	return strings.TrimSpace(g.Title + "\n\n" + strings.Join(sections, "\n\n"))
}

func sleepBelow(hours int) func(Record) bool {
	return func(r Record) bool { return r.SleepHours() < hours }
}

func sleepAbove(hours int) func(Record) bool {
	return func(r Record) bool { return r.SleepHours() > hours }
}

func screenAbove(hours int) func(Record) bool {
	return func(r Record) bool { return r.ScreenHours() > hours }
}

func ratingBelow(rating int) func(Record) bool {
	return func(r Record) bool { return r.MoodRating() < rating }
}

var (
	// VerdictGenerator produces the overall assessment.
	VerdictGenerator = Generator{
		Title: verdictTitle,
		Rules: []Rule{
			When(sleepBelow(sleepOptimalMin), verdictLowSleep),
			When(sleepAbove(sleepOptimalMax), verdictHighSleep),
			ByMood(map[Mood]string{
				MoodAngry:   verdictAngry,
				MoodAnxious: verdictAnxious,
				MoodSad:     verdictSad,
			}),
			When(screenAbove(screenBudget), verdictScreen),
			When(ratingBelow(5), verdictLowMood),
		},
		Numbered:  true,
		ListIntro: verdictListIntro,
		Fallback:  verdictGoodShape,
	}

	// NutritionGenerator produces food suggestions.
	NutritionGenerator = Generator{
		Title: nutritionTitle,
		Intro: nutritionGeneral,
		Rules: []Rule{
			ByMood(map[Mood]string{
				MoodSad:     nutritionSad,
				MoodAnxious: nutritionAnxious,
				MoodAngry:   nutritionAngry,
			}),
			When(sleepBelow(sleepOptimalMin), nutritionLowSleep),
			When(screenAbove(screenBudget), nutritionScreen),
		},
	}

	// WorkoutGenerator produces exercise suggestions.
	WorkoutGenerator = Generator{
		Title: workoutTitle,
		Intro: workoutGeneral,
		Rules: []Rule{
			ByMood(map[Mood]string{
				MoodAnxious:   workoutAnxious,
				MoodSad:       workoutSad,
				MoodAngry:     workoutAngry,
				MoodEnergetic: workoutEnergetic,
			}),
			When(sleepBelow(sleepOptimalMin), workoutLowSleep),
			When(screenAbove(screenBudget), workoutScreen),
		},
		Closing: workoutRemember,
	}
)

// Verdict returns the mental-health assessment for r.
func Verdict(r Record) string { return VerdictGenerator.Render(r) }

// Nutrition returns food suggestions for r.
func Nutrition(r Record) string { return NutritionGenerator.Render(r) }

// Workout returns exercise suggestions for r.
func Workout(r Record) string { return WorkoutGenerator.Render(r) }

// Advice bundles the three advisory texts for one day.
type Advice struct {
	Verdict   string `json:"verdict"`
	Nutrition string `json:"nutrition"`
	Workout   string `json:"workout"`
}

// Advise runs every generator over r.
func Advise(r Record) Advice {
	return Advice{
		Verdict:   Verdict(r),
		Nutrition: Nutrition(r),
		Workout:   Workout(r),
	}
}
