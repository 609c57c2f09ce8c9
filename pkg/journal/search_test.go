package journal

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

func TestTagRecord(t *testing.T) {
	testDB, journalID := setupTestDBWithJournal(t)
	ctx := context.Background()

	r := saveDay(t, testDB, journalID, "2024-01-01")

	for _, tag := range []string{"Work", "gym", " work "} {
		if err := TagRecord(ctx, testDB, journalID, r.Date(), tag); err != nil {
			t.Fatalf("TagRecord(%q) failed: %v", tag, err)
		}
	}

	tags, err := ListTagsForRecord(ctx, testDB, journalID, r.Date())
	if err != nil {
		t.Fatalf("ListTagsForRecord failed: %v", err)
	}
	if !reflect.DeepEqual(tags, []string{"gym", "work"}) {
		t.Errorf("Unexpected tags: %v", tags)
	}

	t.Run("tags survive an overwrite", func(t *testing.T) {
		saveDay(t, testDB, journalID, "2024-01-01")
		tags, err := ListTagsForRecord(ctx, testDB, journalID, r.Date())
		if err != nil {
			t.Fatalf("ListTagsForRecord failed: %v", err)
		}
		if len(tags) != 2 {
			t.Errorf("Expected tags to be kept after overwrite, got %v", tags)
		}
	})

	t.Run("missing day", func(t *testing.T) {
		err := TagRecord(ctx, testDB, journalID, day(t, "2030-01-01"), "work")
		if !errors.Is(err, ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound, got: %v", err)
		}
	})

	t.Run("empty tag", func(t *testing.T) {
		if err := TagRecord(ctx, testDB, journalID, r.Date(), "  "); !errors.Is(err, ErrEmptyTag) {
			t.Errorf("Expected ErrEmptyTag, got: %v", err)
		}
	})

	t.Run("detach", func(t *testing.T) {
		if err := DetachTag(ctx, testDB, journalID, r.Date(), "GYM"); err != nil {
			t.Fatalf("DetachTag failed: %v", err)
		}
		if err := DetachTag(ctx, testDB, journalID, r.Date(), "gym"); !errors.Is(err, ErrTagNotFound) {
			t.Errorf("Expected ErrTagNotFound, got: %v", err)
		}
	})

	all, err := ListTags(ctx, testDB)
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(all) != 2 || all[0].Tag != "gym" || all[1].Tag != "work" {
		t.Errorf("Unexpected tag catalogue: %+v", all)
	}
}

func TestSearchRecordsByTags(t *testing.T) {
	testDB, journalID := setupTestDBWithJournal(t)
	ctx := context.Background()

	tagged := map[string][]string{
		"2024-01-01": {"common", "shared", "uniquea"},
		"2024-01-02": {"common", "shared", "uniqueb"},
		"2024-01-03": {"common", "uniquec"},
		"2024-01-04": {"other"},
	}
	for d, tags := range tagged {
		saveDay(t, testDB, journalID, d)
		for _, tag := range tags {
			if err := TagRecord(ctx, testDB, journalID, day(t, d), tag); err != nil {
				t.Fatalf("TagRecord failed: %v", err)
			}
		}
	}

	t.Run("ranked by matches then most recent", func(t *testing.T) {
		results, err := SearchRecordsByTags(ctx, testDB, journalID, []string{"common", "SHARED"})
		if err != nil {
			t.Fatalf("SearchRecordsByTags failed: %v", err)
		}

		want := []struct {
			day   string
			count int
		}{
			{"2024-01-02", 2},
			{"2024-01-01", 2},
			{"2024-01-03", 1},
		}
		if len(results) != len(want) {
			t.Fatalf("Expected %d results, got %d: %+v", len(want), len(results), results)
		}
		for i, w := range want {
			if results[i].Record.Key() != w.day || results[i].MatchCount != w.count {
				t.Errorf("results[%d] = %s (%d), want %s (%d)", i, results[i].Record.Key(), results[i].MatchCount, w.day, w.count)
			}
		}
	})

	t.Run("no tags", func(t *testing.T) {
		results, err := SearchRecordsByTags(ctx, testDB, journalID, nil)
		if err != nil {
			t.Fatalf("SearchRecordsByTags failed: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("Expected no results, got %d", len(results))
		}
	})

	t.Run("no match", func(t *testing.T) {
		results, err := SearchRecordsByTags(ctx, testDB, journalID, []string{"nothing"})
		if err != nil {
			t.Fatalf("SearchRecordsByTags failed: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("Expected no results, got %d", len(results))
		}
	})
}

func TestFilterRecords(t *testing.T) {
	testDB, journalID := setupTestDBWithJournal(t)
	ctx := context.Background()

	days := []wellbeing.Record{
		newRecord(t, "2024-01-01", wellbeing.MoodSad, 3, 6, 5, ""),
		newRecord(t, "2024-01-02", wellbeing.MoodHappy, 8, 2, 8, ""),
		newRecord(t, "2024-01-03", wellbeing.MoodSad, 4, 5, 6, ""),
		newRecord(t, "2024-01-04", wellbeing.Mood("Bored"), 5, 3, 7, ""),
	}
	for _, r := range days {
		if _, err := SaveRecord(ctx, testDB, journalID, r); err != nil {
			t.Fatalf("SaveRecord failed: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "everything", filter: Filter{}, want: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"}},
		{name: "by mood", filter: Filter{Moods: []wellbeing.Mood{wellbeing.MoodSad}}, want: []string{"2024-01-01", "2024-01-03"}},
		{name: "unknown mood stored verbatim", filter: Filter{Moods: []wellbeing.Mood{"Bored"}}, want: []string{"2024-01-04"}},
		{name: "date range", filter: Filter{From: day(t, "2024-01-02"), To: day(t, "2024-01-03")}, want: []string{"2024-01-02", "2024-01-03"}},
		{name: "mood and from", filter: Filter{Moods: []wellbeing.Mood{wellbeing.MoodSad}, From: day(t, "2024-01-02")}, want: []string{"2024-01-03"}},
		{name: "empty range", filter: Filter{From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := FilterRecords(ctx, testDB, journalID, tt.filter)
			if err != nil {
				t.Fatalf("FilterRecords failed: %v", err)
			}
			var got []string
			for _, r := range records {
				got = append(got, r.Key())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterRecords() = %v, want %v", got, tt.want)
			}
		})
	}
}
