package journal

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

// SearchRecordsByTags finds the journal's days carrying any of queryTags.
// Days are ranked by the number of matching tags, most recent first on ties.
func SearchRecordsByTags(ctx context.Context, db *sql.DB, journalID uuid.UUID, queryTags []string) ([]MatchedRecord, error) {
	var tags []string
	for _, t := range queryTags {
		if norm, err := NormalizeTag(t); err == nil {
			tags = append(tags, norm)
		}
	}
	if len(tags) == 0 {
		return []MatchedRecord{}, nil
	}

	placeholders := strings.Repeat("?,", len(tags)-1) + "?"

	sqlQuery := fmt.Sprintf(`
		SELECT
			r.day, r.mood, r.mood_rating, r.screen_hours, r.sleep_hours, r.journal_text,
			COUNT(rt.tag) AS match_count
		FROM
			records r
		JOIN
			record_tags rt ON r.journal_id = rt.journal_id AND r.day = rt.day
		WHERE
			r.journal_id = ?
			AND rt.tag IN (%s)
		GROUP BY
			r.journal_id, r.day
		ORDER BY
			match_count DESC,
			r.day DESC;
	`, placeholders)

	args := make([]any, 0, 1+len(tags))
	args = append(args, journalID)
	for _, tag := range tags {
		args = append(args, tag)
	}

	rows, err := db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	defer rows.Close()

	var results []MatchedRecord
	for rows.Next() {
		var mr MatchedRecord
		r, err := scanRecord(matchScanner{rows: rows, count: &mr.MatchCount})
		if err != nil {
			return nil, fmt.Errorf("failed to scan search result row: %w", err)
		}
		mr.Record = r
		results = append(results, mr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over search results: %w", err)
	}

	return results, nil
}

// matchScanner appends the match_count column to a record scan.
type matchScanner struct {
	rows  *sql.Rows
	count *int
}

func (m matchScanner) Scan(dest ...any) error {
	return m.rows.Scan(append(dest, m.count)...)
}

// FilterRecords lists the journal's days matching f in chronological order.
func FilterRecords(ctx context.Context, db *sql.DB, journalID uuid.UUID, f Filter) ([]wellbeing.Record, error) {
	if _, err := GetJournal(ctx, db, journalID); err != nil {
		return nil, err
	}

	where := []string{"journal_id = ?"}
	args := []any{journalID}

	if len(f.Moods) > 0 {
		where = append(where, "mood IN ("+strings.Repeat("?,", len(f.Moods)-1)+"?)")
		for _, m := range f.Moods {
			args = append(args, m.String())
		}
	}
	if !f.From.IsZero() {
		where = append(where, "day >= ?")
		args = append(args, dayKey(f.From))
	}
	if !f.To.IsZero() {
		where = append(where, "day <= ?")
		args = append(args, dayKey(f.To))
	}

	query := selectRecordColumns + " WHERE " + strings.Join(where, " AND ") + " ORDER BY day ASC"
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}
