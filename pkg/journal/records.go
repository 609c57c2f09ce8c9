package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

const (
	upsertRecordStatement = `
	INSERT INTO records (journal_id, day, mood, mood_rating, screen_hours, sleep_hours, journal_text, mental_health_index)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(journal_id, day) DO UPDATE SET
		mood = excluded.mood,
		mood_rating = excluded.mood_rating,
		screen_hours = excluded.screen_hours,
		sleep_hours = excluded.sleep_hours,
		journal_text = excluded.journal_text,
		mental_health_index = excluded.mental_health_index,
		updated_at = unixepoch()
	`

	recordExistsStatement = `SELECT COUNT(1) FROM records WHERE journal_id = ? AND day = ?`

	selectRecordColumns = `SELECT day, mood, mood_rating, screen_hours, sleep_hours, journal_text FROM records`

	getRecordStatement = selectRecordColumns + ` WHERE journal_id = ? AND day = ?`

	listRecordsStatement = selectRecordColumns + `
	WHERE journal_id = ?
		AND (? = '' OR day >= ?)
		AND (? = '' OR day <= ?)
	ORDER BY day ASC
	`
)

// scanRecord rebuilds a day through wellbeing.NewRecord. The stored index
// column is never read back.
func scanRecord(row rowScanner) (wellbeing.Record, error) {
	var day, mood, journalText string
	var rating, screen, sleep int
	if err := row.Scan(&day, &mood, &rating, &screen, &sleep, &journalText); err != nil {
		return wellbeing.Record{}, err
	}

	date, err := wellbeing.ParseDay(day)
	if err != nil {
		return wellbeing.Record{}, fmt.Errorf("stored day %q: %w", day, err)
	}

	return wellbeing.NewRecord(wellbeing.Input{
		Date:        date,
		Mood:        wellbeing.Mood(mood),
		MoodRating:  rating,
		ScreenHours: screen,
		SleepHours:  sleep,
		Journal:     journalText,
	})
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func saveRecord(ctx context.Context, ex execer, journalID uuid.UUID, r wellbeing.Record) (bool, error) {
	var existing int
	if err := ex.QueryRowContext(ctx, recordExistsStatement, journalID, r.Key()).Scan(&existing); err != nil {
		return false, err
	}

	_, err := ex.ExecContext(ctx, upsertRecordStatement,
		journalID,
		r.Key(),
		r.Mood().String(),
		r.MoodRating(),
		r.ScreenHours(),
		r.SleepHours(),
		r.Journal(),
		r.Index(),
	)
	if err != nil {
		return false, err
	}
	return existing > 0, nil
}

// SaveRecord stores r in the journal, replacing any earlier record for the
// same day. It reports whether a record was replaced. Tags on a replaced day
// are kept.
func SaveRecord(ctx context.Context, db *sql.DB, journalID uuid.UUID, r wellbeing.Record) (bool, error) {
	if _, err := GetJournal(ctx, db, journalID); err != nil {
		return false, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	replaced, err := saveRecord(ctx, tx, journalID, r)
	if err != nil {
		return false, err
	}
	return replaced, tx.Commit()
}

// ImportHistory saves every record of h in one transaction and returns how
// many days already existed and were replaced.
func ImportHistory(ctx context.Context, db *sql.DB, journalID uuid.UUID, h *wellbeing.History) (int, error) {
	if _, err := GetJournal(ctx, db, journalID); err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	replaced := 0
	for _, r := range h.Records() {
		ok, err := saveRecord(ctx, tx, journalID, r)
		if err != nil {
			return 0, fmt.Errorf("save %s: %w", r.Key(), err)
		}
		if ok {
			replaced++
		}
	}
	return replaced, tx.Commit()
}

func GetRecord(ctx context.Context, db *sql.DB, journalID uuid.UUID, day time.Time) (wellbeing.Record, error) {
	r, err := scanRecord(db.QueryRowContext(ctx, getRecordStatement, journalID, dayKey(day)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return wellbeing.Record{}, ErrRecordNotFound
		}
		return wellbeing.Record{}, err
	}
	return r, nil
}

// ListRecords returns the journal's days between from and to inclusive in
// chronological order. A zero bound is open.
func ListRecords(ctx context.Context, db *sql.DB, journalID uuid.UUID, from, to time.Time) ([]wellbeing.Record, error) {
	if _, err := GetJournal(ctx, db, journalID); err != nil {
		return nil, err
	}

	var lo, hi string
	if !from.IsZero() {
		lo = dayKey(from)
	}
	if !to.IsZero() {
		hi = dayKey(to)
	}

	rows, err := db.QueryContext(ctx, listRecordsStatement, journalID, lo, lo, hi, hi)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows *sql.Rows) ([]wellbeing.Record, error) {
	var records []wellbeing.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadHistory reads the whole journal into memory.
func LoadHistory(ctx context.Context, db *sql.DB, journalID uuid.UUID) (*wellbeing.History, error) {
	records, err := ListRecords(ctx, db, journalID, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	return wellbeing.NewHistory(records...), nil
}
