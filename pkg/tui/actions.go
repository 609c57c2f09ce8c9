package tui

import (
	"context"
	"database/sql"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/unowned-ai/mindlog/pkg/journal"
	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

// List journals from the database and return tea data
func listJournals(db *sql.DB) tea.Cmd {
	return func() tea.Msg {
		journals, err := journal.ListJournals(context.Background(), db, false)
		if err != nil {
			return err
		}
		return journals
	}
}

type daysMsg struct {
	journalID uuid.UUID
	history   *wellbeing.History
}

// Load every logged day of a journal
func listDays(db *sql.DB, journalID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		h, err := journal.LoadHistory(context.Background(), db, journalID)
		if err != nil {
			return err
		}
		return daysMsg{journalID: journalID, history: h}
	}
}

type dayDetailsMsg struct {
	record wellbeing.Record
	tags   []string
	advice wellbeing.Advice
}

// Get a combined message with the day, its tags and the generated advice
func getDayDetails(db *sql.DB, journalID uuid.UUID, day time.Time) tea.Cmd {
	return func() tea.Msg {
		r, err := journal.GetRecord(context.Background(), db, journalID, day)
		if err != nil {
			return err
		}
		tags, err := journal.ListTagsForRecord(context.Background(), db, journalID, day)
		if err != nil {
			return err
		}
		return dayDetailsMsg{record: r, tags: tags, advice: wellbeing.Advise(r)}
	}
}

type statsView struct {
	stats wellbeing.FieldStatistics
	empty bool
}

// Summarize one field of the loaded history for the details pane
func fieldStatistics(h *wellbeing.History, f wellbeing.Field) statsView {
	if h == nil {
		return statsView{empty: true}
	}
	stats, err := h.Statistics(f)
	if errors.Is(err, wellbeing.ErrEmptyDataset) {
		return statsView{empty: true}
	}
	return statsView{stats: stats}
}

// Get database name and file path
func getDbPragmaList(db *sql.DB) (string, string) {
	var name, file string
	err := db.QueryRow(`PRAGMA database_list`).Scan(new(int), &name, &file)
	if err != nil {
		return name, file
	}
	return name, file
}
