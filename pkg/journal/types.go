package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

// Journal is one person's history of logged days.
type Journal struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Tag is a label that can be attached to days.
type Tag struct {
	Tag       string    `json:"tag"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MatchedRecord is a day returned by a tag search with the number of query
// tags it carries.
type MatchedRecord struct {
	Record     wellbeing.Record `json:"record"`
	MatchCount int              `json:"match_count"`
}

// Filter narrows FilterRecords. Zero values leave a dimension unbounded.
type Filter struct {
	Moods []wellbeing.Mood
	From  time.Time
	To    time.Time
}

// unixTime converts the REAL unixepoch() columns.
func unixTime(f float64) time.Time {
	sec := int64(f)
	return time.Unix(sec, int64((f-float64(sec))*1e9))
}

func dayKey(t time.Time) string {
	return wellbeing.Day(t).Format(wellbeing.DateLayout)
}
