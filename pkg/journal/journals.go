package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrJournalNotFound = errors.New("journal not found")
	ErrJournalExists   = errors.New("journal already exists")
)

const (
	createJournalStatement = `
	INSERT INTO journals (id, name, description, active)
	VALUES (?, ?, ?, ?)
	`

	selectJournalColumns = `SELECT id, name, description, active, created_at, updated_at FROM journals`

	getJournalStatement       = selectJournalColumns + ` WHERE id = ?`
	getJournalByNameStatement = selectJournalColumns + ` WHERE name = ?`

	listJournalsStatement = selectJournalColumns + `
	WHERE active = ? OR ? = false
	ORDER BY updated_at DESC, name ASC
	`

	updateJournalStatement = `
	UPDATE journals
	SET name = ?, description = ?, active = ?, updated_at = unixepoch()
	WHERE id = ?
	`

	deleteJournalStatement = `
	DELETE FROM journals
	WHERE id = ?
	`

	deleteInactiveJournalsStatement = `
	DELETE FROM journals
	WHERE active = false
	`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJournal(row rowScanner) (Journal, error) {
	var j Journal
	var description sql.NullString
	var createdAt, updatedAt float64
	if err := row.Scan(&j.ID, &j.Name, &description, &j.Active, &createdAt, &updatedAt); err != nil {
		return Journal{}, err
	}
	j.Description = description.String
	j.CreatedAt = unixTime(createdAt)
	j.UpdatedAt = unixTime(updatedAt)
	return j, nil
}

func CreateJournal(ctx context.Context, db *sql.DB, name, description string) (Journal, error) {
	if _, err := GetJournalByName(ctx, db, name); err == nil {
		return Journal{}, fmt.Errorf("%w: %s", ErrJournalExists, name)
	} else if !errors.Is(err, ErrJournalNotFound) {
		return Journal{}, err
	}

	journalID := uuid.New()
	_, err := db.ExecContext(ctx, createJournalStatement, journalID, name, description, true)
	if err != nil {
		return Journal{}, err
	}

	return GetJournal(ctx, db, journalID)
}

func GetJournal(ctx context.Context, db *sql.DB, id uuid.UUID) (Journal, error) {
	j, err := scanJournal(db.QueryRowContext(ctx, getJournalStatement, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Journal{}, ErrJournalNotFound
		}
		return Journal{}, err
	}
	return j, nil
}

func GetJournalByName(ctx context.Context, db *sql.DB, name string) (Journal, error) {
	j, err := scanJournal(db.QueryRowContext(ctx, getJournalByNameStatement, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Journal{}, ErrJournalNotFound
		}
		return Journal{}, err
	}
	return j, nil
}

// ResolveJournal looks a journal up by UUID, falling back to its name.
func ResolveJournal(ctx context.Context, db *sql.DB, ref string) (Journal, error) {
	if id, err := uuid.Parse(ref); err == nil {
		j, err := GetJournal(ctx, db, id)
		if !errors.Is(err, ErrJournalNotFound) {
			return j, err
		}
	}
	return GetJournalByName(ctx, db, ref)
}

// EnsureJournal returns the journal called name, creating it on first use.
func EnsureJournal(ctx context.Context, db *sql.DB, name string) (Journal, error) {
	j, err := GetJournalByName(ctx, db, name)
	if errors.Is(err, ErrJournalNotFound) {
		return CreateJournal(ctx, db, name, "")
	}
	return j, err
}

func ListJournals(ctx context.Context, db *sql.DB, activeOnly bool) ([]Journal, error) {
	rows, err := db.QueryContext(ctx, listJournalsStatement, activeOnly, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var journals []Journal
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		journals = append(journals, j)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return journals, nil
}

func UpdateJournal(ctx context.Context, db *sql.DB, id uuid.UUID, name, description string, active bool) (Journal, error) {
	res, err := db.ExecContext(ctx, updateJournalStatement, name, description, active, id)
	if err != nil {
		return Journal{}, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return Journal{}, err
	}

	if rowsAffected == 0 {
		return Journal{}, ErrJournalNotFound
	}

	return GetJournal(ctx, db, id)
}

// DeleteJournal removes a journal together with its days and their tag links.
func DeleteJournal(ctx context.Context, db *sql.DB, id uuid.UUID) error {
	res, err := db.ExecContext(ctx, deleteJournalStatement, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrJournalNotFound
	}

	return nil
}

func DeleteInactiveJournals(ctx context.Context, db *sql.DB) (int64, error) {
	res, err := db.ExecContext(ctx, deleteInactiveJournalsStatement)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
