package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	mindlog "github.com/unowned-ai/mindlog/pkg"
)

var initOnce sync.Once

// resetFlags restores every flag in the tree to its default; cobra keeps
// parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

type cli struct {
	t      *testing.T
	dbPath string
	cfgDir string
	stderr string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	initOnce.Do(initCmd)
	dir := t.TempDir()
	return &cli{t: t, dbPath: filepath.Join(dir, "mindlog.db"), cfgDir: dir}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append(args, "--db", c.dbPath, "--config-dir", c.cfgDir, "--log-level", "error"))
	err := rootCmd.Execute()
	c.stderr = errOut.String()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, out)
	return out
}

func TestVersion(t *testing.T) {
	c := newCLI(t)
	assert.Equal(t, mindlog.Version+"\n", c.mustRun("version"))
}

func TestLogAndGetDay(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("days", "log", "2024-01-01", "--mood", "happy", "--rating", "10",
		"--screen", "0", "--sleep", "8", "--text", "great", "--tags", "gym, Work")
	assert.Contains(t, out, "Entry for 2024-01-01 saved.")
	assert.Contains(t, out, "Mental Health Index: 10.0/10")
	assert.Contains(t, out, "Tags: gym, work")
	assert.Contains(t, out, "Mental Health Assessment:")

	out = c.mustRun("days", "log", "2024-01-01", "--mood", "sad", "--rating", "2",
		"--screen", "9", "--sleep", "4")
	assert.Contains(t, out, "Entry for 2024-01-01 replaced.")
	assert.Contains(t, out, "Tags: gym, work", "tags survive an overwrite")

	out = c.mustRun("days", "get", "2024-01-01")
	assert.Contains(t, out, "Mood: Sad (2/10)")

	assert.Empty(t, c.stderr)

	_, err := c.run("days", "get", "2024-01-02")
	assert.EqualError(t, err, "no entry for 2024-01-02")

	out = c.mustRun("days", "untag", "2024-01-01", "gym")
	assert.Equal(t, "2024-01-01 tags: work\n", out)

	_, err = c.run("days", "untag", "2024-01-01", "gym")
	assert.EqualError(t, err, "tag 'gym' is not on 2024-01-01")
}

func TestLogDay_UnknownMood(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("days", "log", "2024-01-01", "--mood", "bored", "--rating", "5", "--screen", "2", "--sleep", "8")
	assert.Contains(t, out, "Mood: bored (5/10)")
	assert.Contains(t, c.stderr, "Warning: mood 'bored' is not one of Happy, Sad, Angry, Calm, Anxious, Energetic")
}

func TestLogDay_Validation(t *testing.T) {
	c := newCLI(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"rating above 10", []string{"--rating", "11", "--screen", "2", "--sleep", "8"}, "mood rating must be between 0 and 10, got 11"},
		{"screen above 24", []string{"--rating", "5", "--screen", "25", "--sleep", "8"}, "screen time must be between 0 and 24, got 25"},
		{"negative sleep", []string{"--rating", "5", "--screen", "2", "--sleep", "-1"}, "sleep time must be between 0 and 24, got -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.run(append([]string{"days", "log", "2024-01-01"}, tt.args...)...)
			assert.EqualError(t, err, tt.want)
		})
	}

	_, err := c.run("days", "log", "01/02/2024", "--rating", "5", "--screen", "2", "--sleep", "8")
	assert.ErrorContains(t, err, "expected YYYY-MM-DD")
}

func TestAdviceAndStatistics(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("stats", "--field", "sleep")
	assert.Contains(t, out, "No logged days yet")

	_, err := c.run("advice")
	assert.EqualError(t, err, "no logged days yet")

	c.mustRun("days", "log", "2024-01-01", "--mood", "Calm", "--rating", "5", "--screen", "4", "--sleep", "6")
	c.mustRun("days", "log", "2024-01-05", "--mood", "Calm", "--rating", "5", "--screen", "6", "--sleep", "8")
	c.mustRun("days", "log", "2024-01-08", "--mood", "Angry", "--rating", "5", "--screen", "2", "--sleep", "9")

	out = c.mustRun("advice", "--only", "workout")
	assert.Contains(t, out, "Exercise Recommendations:")
	assert.NotContains(t, out, "Nutrition Suggestions:")

	out = c.mustRun("advice", "2024-01-01")
	assert.Contains(t, out, "Mental Health Assessment:")
	assert.Contains(t, out, "Exercise Recommendations:")

	_, err = c.run("advice", "--only", "horoscope")
	assert.ErrorContains(t, err, "unknown --only value")

	out = c.mustRun("stats", "--field", "sleep")
	assert.Contains(t, out, "Week 01 2024")
	assert.Contains(t, out, "Week 02 2024")
	assert.Contains(t, out, "Overall Sleep Time Statistics:")
	assert.Contains(t, out, "Number of entries: 3")
	assert.Contains(t, out, "Number of weeks: 2")

	out = c.mustRun("weeks", "--field", "screen")
	assert.Equal(t, "  Week 01 2024    5.00 hours (2 entries)\n  Week 02 2024    2.00 hours (1 entries)\n", out)

	_, err = c.run("weeks", "--field", "steps")
	assert.ErrorContains(t, err, "unknown field")

	out = c.mustRun("search", "--mood", "angry")
	assert.Contains(t, out, "Found 1 matching days")
	assert.Contains(t, out, "Date: 2024-01-08")
}

func TestJournals(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("journals", "create", "--name", "sam", "--description", "Sam's days")
	assert.Contains(t, out, "Journal created successfully!")

	_, err := c.run("journals", "create", "--name", "sam")
	assert.EqualError(t, err, "journal already exists: sam")

	c.mustRun("days", "log", "2024-01-01", "--journal", "sam", "--rating", "5", "--screen", "2", "--sleep", "8")
	out = c.mustRun("days", "list", "--journal", "sam")
	assert.Contains(t, out, "Date: 2024-01-01")

	out = c.mustRun("days", "list")
	assert.Equal(t, "No entries found.\n", out, "default journal is separate")

	_, err = c.run("days", "list", "--journal", "nobody")
	assert.EqualError(t, err, "journal not found: nobody")

	c.mustRun("journals", "update", "sam", "--active=false")
	out = c.mustRun("journals", "list", "--active-only")
	assert.NotContains(t, out, "Name:        sam")

	out = c.mustRun("journals", "clean")
	assert.Equal(t, "Deleted 1 inactive journals.\n", out)
}

func TestSearchByTags(t *testing.T) {
	c := newCLI(t)

	c.mustRun("days", "log", "2024-01-01", "--rating", "3", "--screen", "6", "--sleep", "5", "--tags", "work,deadline")
	c.mustRun("days", "log", "2024-01-02", "--rating", "8", "--screen", "2", "--sleep", "8", "--tags", "work")

	out := c.mustRun("search", "--tags", "work,deadline")
	require.Contains(t, out, "Found 2 matching days")
	assert.Less(t, strings.Index(out, "Date: 2024-01-01"), strings.Index(out, "Date: 2024-01-02"),
		"more matching tags ranks first")

	out = c.mustRun("tags")
	assert.Contains(t, out, "deadline |")
	assert.Contains(t, out, "work |")

	_, err := c.run("search")
	assert.ErrorContains(t, err, "give --tags")
}

func TestImportExport(t *testing.T) {
	c := newCLI(t)

	src := filepath.Join(t.TempDir(), "journal.txt")
	lines := strings.Join([]string{
		`2024-01-01,Happy,10,0,8,line one\nline two,3.14`,
		``,
		`2024-01-02,Sad,2,9,4,first,0`,
		`2024-01-02,Sad,3,9,4,second, with comma,0`,
	}, "\n")
	require.NoError(t, os.WriteFile(src, []byte(lines), 0o644))

	out := c.mustRun("import", src)
	assert.Equal(t, "Imported 2 days into default (0 replaced).\n", out)

	out = c.mustRun("export")
	got := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, got, 2)
	assert.Equal(t, `2024-01-01,Happy,10,0,8,line one\nline two,10.00`, got[0], "index is recomputed")
	assert.True(t, strings.HasPrefix(got[1], "2024-01-02,Sad,3,9,4,second, with comma,"), got[1])

	// Re-importing the export replaces the same days
	dump := filepath.Join(t.TempDir(), "dump.txt")
	c.mustRun("export", "-o", dump)
	out = c.mustRun("import", dump)
	assert.Equal(t, "Imported 2 days into default (2 replaced).\n", out)

	xlsx := filepath.Join(t.TempDir(), "mindlog.xlsx")
	c.mustRun("export", "--format", "xlsx", "-o", xlsx)
	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Entries")
	rows, err := f.GetRows("Entries")
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	_, err = c.run("export", "--format", "csv")
	assert.ErrorContains(t, err, "unknown --format")

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("2024-01-01,Happy,ten,0,8,x,1\n"), 0o644))
	_, err = c.run("import", bad)
	assert.ErrorContains(t, err, "line 1")
}
