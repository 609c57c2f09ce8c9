package wellbeing

import (
	"sort"
	"time"
)

// History holds one person's records keyed by day. Saving a day that already
// exists replaces it. A History is not safe for concurrent use; each session
// owns its own.
type History struct {
	byDay map[string]Record
}

// NewHistory builds a history from records; later records win on duplicate days.
func NewHistory(records ...Record) *History {
	h := &History{byDay: make(map[string]Record, len(records))}
	for _, r := range records {
		h.Put(r)
	}
	return h
}

// Put stores r under its day and reports whether an earlier record was replaced.
func (h *History) Put(r Record) bool {
	if h.byDay == nil {
		h.byDay = make(map[string]Record)
	}
	_, replaced := h.byDay[r.Key()]
	h.byDay[r.Key()] = r
	return replaced
}

// Get returns the record for the day containing t.
func (h *History) Get(t time.Time) (Record, bool) {
	r, ok := h.byDay[Day(t).Format(DateLayout)]
	return r, ok
}

// Len is the number of logged days.
func (h *History) Len() int {
	return len(h.byDay)
}

// Records returns all records in chronological order.
func (h *History) Records() []Record {
	out := make([]Record, 0, len(h.byDay))
	for _, r := range h.byDay {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date().Before(out[j].Date())
	})
	return out
}

// Latest returns the most recent record.
func (h *History) Latest() (Record, bool) {
	records := h.Records()
	if len(records) == 0 {
		return Record{}, false
	}
	return records[len(records)-1], true
}

// WeeklyAverages groups the history by ISO week for field f.
func (h *History) WeeklyAverages(f Field) []WeeklyAverage {
	return WeeklyAverages(h.Records(), f)
}

// Statistics summarises field f over the whole history.
func (h *History) Statistics(f Field) (FieldStatistics, error) {
	return Statistics(h.Records(), f)
}
