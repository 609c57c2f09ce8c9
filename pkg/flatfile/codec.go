// Package flatfile reads and writes the line-oriented journal export format:
//
//	date,mood,rating,screen,sleep,journal,index
//
// The journal field is escaped so one record always fits on one line. Commas
// inside the journal are left as-is; decoders take the index from the last
// comma instead.
package flatfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

var (
	ErrFieldCount = errors.New("wrong number of fields")
	ErrBadNumber  = errors.New("invalid number")
)

// EscapeJournal encodes backslashes, newlines and carriage returns. Other
// bytes pass through untouched, valid UTF-8 or not.
func EscapeJournal(s string) string {
	if !strings.ContainsAny(s, "\\\n\r") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// UnescapeJournal reverses EscapeJournal. Unknown escapes are kept literally.
func UnescapeJournal(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(c)
			continue
		}
		i++
	}
	return b.String()
}

// EncodeRecord formats r as a single line without the trailing newline.
func EncodeRecord(r wellbeing.Record) string {
	return fmt.Sprintf("%s,%s,%d,%d,%d,%s,%.2f",
		r.Key(), r.Mood(), r.MoodRating(), r.ScreenHours(), r.SleepHours(),
		EscapeJournal(r.Journal()), r.Index())
}

// DecodeRecord parses one line. The index column is checked for shape but the
// record's index is always recomputed from its inputs. Mood labels match
// exactly, so "happy" is an unknown, neutral label here.
func DecodeRecord(line string) (wellbeing.Record, error) {
	parts := strings.SplitN(line, ",", 6)
	if len(parts) != 6 {
		return wellbeing.Record{}, fmt.Errorf("%w: got %d, want 7", ErrFieldCount, len(parts))
	}

	day, err := wellbeing.ParseDay(strings.TrimSpace(parts[0]))
	if err != nil {
		return wellbeing.Record{}, fmt.Errorf("invalid date %q: %w", parts[0], err)
	}

	var nums [3]int
	for i, raw := range parts[2:5] {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return wellbeing.Record{}, fmt.Errorf("%w %q", ErrBadNumber, raw)
		}
		nums[i] = n
	}

	cut := strings.LastIndexByte(parts[5], ',')
	if cut < 0 {
		return wellbeing.Record{}, fmt.Errorf("%w: got 6, want 7", ErrFieldCount)
	}
	journal, index := parts[5][:cut], parts[5][cut+1:]
	if _, err := strconv.ParseFloat(strings.TrimSpace(index), 64); err != nil {
		return wellbeing.Record{}, fmt.Errorf("%w index %q", ErrBadNumber, index)
	}

	return wellbeing.NewRecord(wellbeing.Input{
		Date:        day,
		Mood:        wellbeing.Mood(strings.TrimSpace(parts[1])),
		MoodRating:  nums[0],
		ScreenHours: nums[1],
		SleepHours:  nums[2],
		Journal:     UnescapeJournal(journal),
	})
}
