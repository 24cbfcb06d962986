package logtail

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
	"time"
)

func readAll(t *testing.T, lines Lines) ([]string, error) {
	t.Helper()
	var out []string
	for {
		line, err := lines.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		var lineErr *LineError
		if errors.As(err, &lineErr) {
			out = append(out, "<skipped>")
			continue
		}
		if err != nil {
			return out, err
		}
		out = append(out, string(line))
	}
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single with newline", "a\n", []string{"a"}},
		{"final line without newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readAll(t, NewScanner(strings.NewReader(tt.input), 0))
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScanner_SkipsLongLineAndContinues(t *testing.T) {
	input := "short\n" + strings.Repeat("x", 100) + "\nafter\n"
	got, err := readAll(t, NewScanner(strings.NewReader(input), 10))
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	want := []string{"short", "<skipped>", "after"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestScanner_LongLineSpanningBuffer(t *testing.T) {
	long := strings.Repeat("y", initialBuffer*2)
	input := long + "\nend\n"
	got, err := readAll(t, NewScanner(strings.NewReader(input), 0))
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(got) != 2 || got[0] != long || got[1] != "end" {
		t.Fatalf("got %d lines (first %d bytes), want 2 lines with the long one intact", len(got), len(got[0]))
	}
}

func TestScanner_ReadErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("one\n"), iotest.ErrReader(boom))
	got, err := readAll(t, NewScanner(r, 0))
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if !reflect.DeepEqual(got, []string{"one"}) {
		t.Fatalf("lines before error = %q, want [one]", got)
	}
}

func writeLines(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	var content strings.Builder
	for i := 1; i <= n; i++ {
		content.WriteString(fmt.Sprintf("Line %d\n", i))
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}
	return path
}

func TestTailOffset(t *testing.T) {
	path := writeLines(t, 10)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	tests := []struct {
		name      string
		maxLines  int
		wantFirst string
	}{
		{"whole file (negative)", -1, "Line 1\n"},
		{"partial (5)", 5, "Line 6\n"},
		{"exactly all (10)", 10, "Line 1\n"},
		{"more than exists (20)", 20, "Line 1\n"},
		{"last line (1)", 1, "Line 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, err := TailOffset(path, tt.maxLines)
			if err != nil {
				t.Fatalf("TailOffset() error = %v", err)
			}
			rest := string(data[off:])
			if !strings.HasPrefix(rest, tt.wantFirst) {
				t.Fatalf("TailOffset(%d) = %d, remaining starts with %q, want %q", tt.maxLines, off, firstLine(rest), tt.wantFirst)
			}
		})
	}

	off, err := TailOffset(path, 0)
	if err != nil {
		t.Fatalf("TailOffset(0) error = %v", err)
	}
	if off != int64(len(data)) {
		t.Fatalf("TailOffset(0) = %d, want %d", off, len(data))
	}
}

func TestTailOffset_NoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(path, []byte("a\nb\nc"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	off, err := TailOffset(path, 2)
	if err != nil {
		t.Fatalf("TailOffset() error = %v", err)
	}
	if off != 2 {
		t.Fatalf("TailOffset() = %d, want 2", off)
	}
}

func TestTailOffset_MissingFile(t *testing.T) {
	if _, err := TailOffset(filepath.Join(t.TempDir(), "missing.log"), 3); err == nil {
		t.Fatal("TailOffset() error = nil, want error for missing file")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i+1]
	}
	return s
}

func TestFollow_ReadsBacklogThenAppends(t *testing.T) {
	path := writeLines(t, 5)

	f, err := Follow(path, FollowOptions{Lines: 2, Poll: true})
	if err != nil {
		t.Fatalf("Follow() error = %v", err)
	}
	defer f.Close()

	next := func() string {
		t.Helper()
		type result struct {
			line []byte
			err  error
		}
		ch := make(chan result, 1)
		go func() {
			line, err := f.Next()
			ch <- result{line, err}
		}()
		select {
		case r := <-ch:
			if r.err != nil {
				t.Fatalf("Next() error = %v", r.err)
			}
			return string(r.line)
		case <-time.After(5 * time.Second):
			t.Fatal("Next() timed out")
			return ""
		}
	}

	if got := next(); got != "Line 4" {
		t.Fatalf("first line = %q, want Line 4", got)
	}
	if got := next(); got != "Line 5" {
		t.Fatalf("second line = %q, want Line 5", got)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := file.WriteString("Line 6\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	file.Close()

	if got := next(); got != "Line 6" {
		t.Fatalf("appended line = %q, want Line 6", got)
	}
}

func TestFollow_CloseWithUnreadLines(t *testing.T) {
	path := writeLines(t, 50)

	f, err := Follow(path, FollowOptions{Lines: -1, Poll: true})
	if err != nil {
		t.Fatalf("Follow() error = %v", err)
	}
	line, err := f.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if string(line) != "Line 1" {
		t.Fatalf("first line = %q, want Line 1", line)
	}

	closed := make(chan error, 1)
	go func() { closed <- f.Close() }()
	select {
	case err := <-closed:
		if err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Close() blocked with unread lines pending")
	}

	if _, err := f.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("Next() after Close error = %v, want io.EOF", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
