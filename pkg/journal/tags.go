package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTagNotFound = errors.New("tag not found")
	ErrEmptyTag    = errors.New("tag must not be empty")
)

const (
	createTagStatement = `
	INSERT INTO tags (tag) VALUES (?)
	ON CONFLICT(tag) DO UPDATE SET updated_at = unixepoch()
	`

	attachTagStatement = `
	INSERT OR IGNORE INTO record_tags (journal_id, day, tag) VALUES (?, ?, ?)
	`

	detachTagStatement = `
	DELETE FROM record_tags WHERE journal_id = ? AND day = ? AND tag = ?
	`

	listRecordTagsStatement = `
	SELECT tag FROM record_tags WHERE journal_id = ? AND day = ? ORDER BY tag ASC
	`

	listTagsStatement = `SELECT tag, created_at, updated_at FROM tags ORDER BY tag ASC`
)

// NormalizeTag trims and lower-cases a tag.
func NormalizeTag(tag string) (string, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return "", ErrEmptyTag
	}
	return tag, nil
}

// TagRecord attaches tag to the journal's day. Tagging twice is a no-op.
func TagRecord(ctx context.Context, db *sql.DB, journalID uuid.UUID, day time.Time, tag string) error {
	tag, err := NormalizeTag(tag)
	if err != nil {
		return err
	}
	if _, err := GetRecord(ctx, db, journalID, day); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createTagStatement, tag); err != nil {
		return fmt.Errorf("failed to create tag %q: %w", tag, err)
	}
	if _, err := tx.ExecContext(ctx, attachTagStatement, journalID, dayKey(day), tag); err != nil {
		return fmt.Errorf("failed to attach tag %q: %w", tag, err)
	}
	return tx.Commit()
}

// DetachTag removes tag from the journal's day.
func DetachTag(ctx context.Context, db *sql.DB, journalID uuid.UUID, day time.Time, tag string) error {
	tag, err := NormalizeTag(tag)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, detachTagStatement, journalID, dayKey(day), tag)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTagNotFound
	}
	return nil
}

func ListTagsForRecord(ctx context.Context, db *sql.DB, journalID uuid.UUID, day time.Time) ([]string, error) {
	rows, err := db.QueryContext(ctx, listRecordTagsStatement, journalID, dayKey(day))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// ListTags retrieves every known tag.
func ListTags(ctx context.Context, db *sql.DB) ([]Tag, error) {
	rows, err := db.QueryContext(ctx, listTagsStatement)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []Tag
	for rows.Next() {
		var t Tag
		var createdAt, updatedAt float64
		if err := rows.Scan(&t.Tag, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		t.CreatedAt = unixTime(createdAt)
		t.UpdatedAt = unixTime(updatedAt)
		tags = append(tags, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}
