package logtail

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	initialBuffer = 64 * 1024
	// DefaultMaxLine is the longest line a Scanner returns before skipping it.
	DefaultMaxLine = 1024 * 1024
)

// ErrLineTooLong reports a line that exceeded the scanner's limit. The line is
// consumed and reading can continue.
var ErrLineTooLong = errors.New("line too long")

// LineError wraps a failure that affects a single line only.
type LineError struct {
	Err error
}

func (e *LineError) Error() string { return "skip line: " + e.Err.Error() }

func (e *LineError) Unwrap() error { return e.Err }

// Lines yields newline-delimited lines without their terminators.
// Next returns io.EOF once the source is exhausted.
type Lines interface {
	Next() ([]byte, error)
}

// Scanner reads lines from an io.Reader. The returned slice is only valid
// until the next call to Next.
type Scanner struct {
	r       *bufio.Reader
	buf     []byte
	maxLine int
}

// NewScanner returns a Scanner over r. maxLine <= 0 uses DefaultMaxLine.
func NewScanner(r io.Reader, maxLine int) *Scanner {
	if maxLine <= 0 {
		maxLine = DefaultMaxLine
	}
	return &Scanner{
		r:       bufio.NewReaderSize(r, initialBuffer),
		buf:     make([]byte, 0, initialBuffer),
		maxLine: maxLine,
	}
}

// Next returns the next line. A final line without a trailing newline is
// still returned before io.EOF.
func (s *Scanner) Next() ([]byte, error) {
	s.buf = s.buf[:0]
	tooLong := false
	read := 0
	for {
		chunk, err := s.r.ReadSlice('\n')
		read += len(chunk)
		if !tooLong {
			if len(s.buf)+len(chunk) > s.maxLine+1 {
				tooLong = true
				s.buf = s.buf[:0]
			} else {
				s.buf = append(s.buf, chunk...)
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if read == 0 {
				return nil, io.EOF
			}
		default:
			return nil, fmt.Errorf("read line: %w", err)
		}

		if tooLong {
			return nil, &LineError{Err: ErrLineTooLong}
		}
		return trimEOL(s.buf), nil
	}
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}

// TailOffset returns the byte offset at which the last maxLines lines of the
// file at path begin. A negative maxLines returns 0 (whole file) and zero
// returns the current file size.
func TailOffset(path string, maxLines int) (int64, error) {
	if maxLines < 0 {
		return 0, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	if maxLines == 0 {
		info, err := file.Stat()
		if err != nil {
			return 0, fmt.Errorf("stat log: %w", err)
		}
		return info.Size(), nil
	}

	ring := make([]int64, maxLines)
	r := bufio.NewReaderSize(file, initialBuffer)
	var pos int64
	count := 0
	idx := 0
	atLineStart := true
	for {
		chunk, err := r.ReadSlice('\n')
		if len(chunk) > 0 {
			if atLineStart {
				ring[idx] = pos
				idx = (idx + 1) % maxLines
				if count < maxLines {
					count++
				}
			}
			pos += int64(len(chunk))
			atLineStart = chunk[len(chunk)-1] == '\n'
		}
		if err == nil || errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		return 0, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return 0, nil
	}
	return ring[idx], nil
}
