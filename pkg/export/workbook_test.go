package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

func record(t *testing.T, day string, mood wellbeing.Mood, rating, screen, sleep int, journal string) wellbeing.Record {
	t.Helper()
	d, err := wellbeing.ParseDay(day)
	require.NoError(t, err)
	r, err := wellbeing.NewRecord(wellbeing.Input{
		Date: d, Mood: mood, MoodRating: rating, ScreenHours: screen, SleepHours: sleep, Journal: journal,
	})
	require.NoError(t, err)
	return r
}

func open(t *testing.T, h *wellbeing.History) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, "alex", h))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriteWorkbook(t *testing.T) {
	h := wellbeing.NewHistory(
		record(t, "2024-01-08", wellbeing.MoodHappy, 8, 2, 9, "new week"),
		record(t, "2024-01-01", wellbeing.MoodSad, 3, 4, 6, "first, with comma\nand a newline"),
		record(t, "2024-01-05", wellbeing.MoodCalm, 6, 6, 8, ""),
	)
	f := open(t, h)

	assert.Equal(t, []string{"Entries", "Screen Time", "Sleep Time", "Mood Rating", "Index"}, f.GetSheetList())

	rows, err := f.GetRows(EntriesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, []string{"2024-01-01", "2024-W01", "Sad", "3", "4", "6"}, rows[1][:6])
	assert.Equal(t, "first, with comma\nand a newline", rows[1][7])
	assert.Equal(t, "2024-01-08", rows[3][0])

	sleep, err := f.GetRows("Sleep Time")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-W01", "Week 01 2024", "7", "2"}, sleep[1])
	assert.Equal(t, []string{"2024-W02", "Week 02 2024", "9", "1"}, sleep[2])

	summary := map[string]string{}
	for _, row := range sleep[3:] {
		if len(row) >= 2 {
			summary[row[0]] = row[1]
		}
	}
	assert.Equal(t, "hours", summary["Overall Sleep Time"])
	assert.Equal(t, "6", summary["Minimum"])
	assert.Equal(t, "9", summary["Maximum"])
	assert.Equal(t, "3", summary["Number of entries"])
	assert.Equal(t, "2", summary["Number of weeks"])

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "alex", props.Title)
}

func TestWriteWorkbook_Empty(t *testing.T) {
	f := open(t, wellbeing.NewHistory())

	for _, sheet := range append([]string{EntriesSheet}, "Screen Time", "Index") {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 1, "%s should only hold its header", sheet)
	}
}
