// Package export writes a journal's history as an xlsx workbook.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

const EntriesSheet = "Entries"

// FieldSheets maps each aggregated field to its sheet, in workbook order.
var FieldSheets = []struct {
	Sheet string
	Field wellbeing.Field
}{
	{"Screen Time", wellbeing.ScreenTime},
	{"Sleep Time", wellbeing.SleepTime},
	{"Mood Rating", wellbeing.MoodRating},
	{"Index", wellbeing.MentalHealthIndex},
}

var (
	entryHeaders = []any{"Date", "Week", "Mood", "Mood Rating", "Screen Time (h)", "Sleep Time (h)", "Mental Health Index", "Journal"}
	weekHeaders  = []any{"Week", "Label", "Average", "Entries"}
	entryWidths  = []float64{12, 10, 14, 12, 15, 15, 20, 60}
)

// WriteWorkbook writes h to w: one row per day on the Entries sheet, then one
// sheet per field with weekly averages followed by the overall summary.
// Empty histories produce header-only sheets.
func WriteWorkbook(w io.Writer, name string, h *wellbeing.History) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   name,
		Subject: "mindlog journal export",
		Creator: "mindlog",
	}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	records := h.Records()

	if _, err := f.NewSheet(EntriesSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := writeHeader(f, EntriesSheet, entryHeaders, headerStyle); err != nil {
		return err
	}
	for i, width := range entryWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(EntriesSheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	for i, r := range records {
		row := []any{
			r.Key(),
			wellbeing.WeekKey(r.Date()),
			r.Mood().String(),
			r.MoodRating(),
			r.ScreenHours(),
			r.SleepHours(),
			round2(r.Index()),
			r.Journal(),
		}
		if err := setRow(f, EntriesSheet, i+2, row); err != nil {
			return err
		}
	}

	for _, fs := range FieldSheets {
		if err := writeFieldSheet(f, fs.Sheet, fs.Field, records, headerStyle); err != nil {
			return err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(EntriesSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeFieldSheet(f *excelize.File, sheet string, field wellbeing.Field, records []wellbeing.Record, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if err := writeHeader(f, sheet, weekHeaders, headerStyle); err != nil {
		return err
	}

	stats, err := wellbeing.Statistics(records, field)
	if errors.Is(err, wellbeing.ErrEmptyDataset) {
		return nil
	}
	if err != nil {
		return err
	}

	row := 2
	for _, wk := range stats.Weekly {
		if err := setRow(f, sheet, row, []any{wk.Week, wellbeing.WeekLabel(wk.Week), round2(wk.Average), wk.Count}); err != nil {
			return err
		}
		row++
	}

	row++
	summary := [][]any{
		{"Overall " + stats.Field, stats.Unit},
		{"Average", round2(stats.Summary.Mean)},
		{"Minimum", round2(stats.Summary.Min)},
		{"Maximum", round2(stats.Summary.Max)},
		{"Number of entries", stats.Summary.Count},
		{"Number of weeks", stats.Summary.Weeks},
	}
	for _, values := range summary {
		if err := setRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []any, style int) error {
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
