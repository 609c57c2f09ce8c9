package flatfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestEscapeJournal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "two\nlines", want: `two\nlines`},
		{in: "windows\r\nbreak", want: `windows\r\nbreak`},
		{in: `C:\notes`, want: `C:\\notes`},
		{in: "", want: ""},
		{in: "caf\xe9\nline", want: "caf\xe9\\nline"},
		{in: "\xff\xfe\\", want: "\xff\xfe\\\\"},
	}
	for _, tt := range tests {
		got := EscapeJournal(tt.in)
		assert.Equal(t, tt.want, got)
		assert.NotContains(t, got, "\n")
		assert.Equal(t, tt.in, UnescapeJournal(got))
	}
}

func TestUnescapeJournal_Legacy(t *testing.T) {
	assert.Equal(t, "first\nsecond", UnescapeJournal(`first\nsecond`))
	assert.Equal(t, `odd \q escape`, UnescapeJournal(`odd \q escape`))
	assert.Equal(t, `trailing \`, UnescapeJournal(`trailing \`))
}

func TestEncodeRecord(t *testing.T) {
	r := record(t, "2024-01-05", wellbeing.MoodCalm, 6, 3, 7, "went for a walk,\nfelt fine")
	line := EncodeRecord(r)

	assert.True(t, strings.HasPrefix(line, `2024-01-05,Calm,6,3,7,went for a walk,\nfelt fine,`))
	assert.NotContains(t, line, "\n")
}

func TestDecodeRecord(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		want := record(t, "2024-01-05", wellbeing.MoodAnxious, 4, 9, 5, "a, b, c\nnext line with \\ slash")
		got, err := DecodeRecord(EncodeRecord(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("stored index is ignored", func(t *testing.T) {
		got, err := DecodeRecord("2024-01-05,Happy,10,0,8,great,1.00")
		require.NoError(t, err)
		assert.Equal(t, 10.0, got.Index())
	})

	t.Run("invalid utf-8 survives", func(t *testing.T) {
		want := record(t, "2024-01-05", wellbeing.MoodCalm, 6, 3, 7, "caf\xe9\nline")
		got, err := DecodeRecord(EncodeRecord(want))
		require.NoError(t, err)
		assert.Equal(t, []byte("caf\xe9\nline"), []byte(got.Journal()))
	})

	t.Run("mood labels match exactly", func(t *testing.T) {
		got, err := DecodeRecord("2024-01-05,happy,5,0,8,great,10.00")
		require.NoError(t, err)
		assert.Equal(t, wellbeing.Mood("happy"), got.Mood())
		assert.InDelta(t, 8.0, got.Index(), 1e-9, "lower-case label scores neutral")

		got, err = DecodeRecord("2024-01-05, Happy ,5,0,8,great,10.00")
		require.NoError(t, err)
		assert.Equal(t, wellbeing.MoodHappy, got.Mood())
		assert.InDelta(t, 10.0, got.Index(), 1e-9)
	})

	t.Run("unknown mood kept", func(t *testing.T) {
		got, err := DecodeRecord("2024-01-05,Bored,5,2,8,,6.00")
		require.NoError(t, err)
		assert.Equal(t, wellbeing.Mood("Bored"), got.Mood())
		assert.Equal(t, "", got.Journal())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := DecodeRecord("2024-01-05,Happy,5")
		assert.True(t, errors.Is(err, ErrFieldCount))

		_, err = DecodeRecord("2024-01-05,Happy,5,2,8,no index")
		assert.True(t, errors.Is(err, ErrFieldCount))

		_, err = DecodeRecord("2024-01-05,Happy,five,2,8,x,1.0")
		assert.True(t, errors.Is(err, ErrBadNumber))

		_, err = DecodeRecord("2024-01-05,Happy,5,2,8,x,high")
		assert.True(t, errors.Is(err, ErrBadNumber))

		_, err = DecodeRecord("05/01/2024,Happy,5,2,8,x,1.0")
		assert.Error(t, err)

		_, err = DecodeRecord("2024-01-05,Happy,5,30,8,x,1.0")
		var verr *wellbeing.ValidationError
		assert.True(t, errors.As(err, &verr))
	})
}

func TestReader(t *testing.T) {
	input := strings.Join([]string{
		"2024-01-01,Sad,3,6,5,rough day,4.20",
		"",
		"2024-01-02,Happy,8,2,8,better,9.00\r",
		"2024-01-01,Calm,6,3,7,rewritten,7.00",
	}, "\n")

	h, err := ReadHistory(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, h.Len())

	records := h.Records()
	assert.Equal(t, wellbeing.MoodCalm, records[0].Mood(), "last line for a day wins")
	assert.Equal(t, "better", records[1].Journal())

	_, err = NewReader(strings.NewReader("2024-01-01,Sad,3,6,5,ok,4.2\n\nbroken\n")).ReadAll()
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.True(t, errors.Is(err, ErrFieldCount))
}

func TestWriteHistory(t *testing.T) {
	h := wellbeing.NewHistory(
		record(t, "2024-01-02", wellbeing.MoodHappy, 8, 2, 8, "second"),
		record(t, "2024-01-01", wellbeing.MoodSad, 3, 6, 5, "first\nday"),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, h))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "2024-01-01,Sad,3,6,5,first\\nday,"))

	again, err := ReadHistory(&buf)
	require.NoError(t, err)
	assert.Equal(t, h.Records(), again.Records())
}
