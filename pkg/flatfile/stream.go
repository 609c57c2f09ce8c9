package flatfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

// ParseError reports the line a decode failure happened on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Reader decodes records from a line stream. Blank lines are skipped.
type Reader struct {
	s    *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Reader{s: s}
}

// Read returns the next record, or io.EOF once the stream is exhausted.
func (r *Reader) Read() (wellbeing.Record, error) {
	for r.s.Scan() {
		r.line++
		text := strings.TrimRight(r.s.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := DecodeRecord(text)
		if err != nil {
			return wellbeing.Record{}, &ParseError{Line: r.line, Err: err}
		}
		return rec, nil
	}
	if err := r.s.Err(); err != nil {
		return wellbeing.Record{}, err
	}
	return wellbeing.Record{}, io.EOF
}

// ReadAll decodes every remaining record in file order.
func (r *Reader) ReadAll() ([]wellbeing.Record, error) {
	var out []wellbeing.Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// ReadHistory decodes a whole stream into a History. A day that appears more
// than once keeps its last line.
func ReadHistory(src io.Reader) (*wellbeing.History, error) {
	records, err := NewReader(src).ReadAll()
	if err != nil {
		return nil, err
	}
	return wellbeing.NewHistory(records...), nil
}

// Writer encodes records one per line. Call Flush when done.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Write(r wellbeing.Record) error {
	if _, err := w.w.WriteString(EncodeRecord(r)); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteHistory writes h in chronological order and flushes.
func WriteHistory(dst io.Writer, h *wellbeing.History) error {
	w := NewWriter(dst)
	for _, r := range h.Records() {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return w.Flush()
}
