package ingest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/five82/jlv/internal/logtail"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// OpenOptions control how an input is opened.
type OpenOptions struct {
	Follow  bool      // tail a regular file instead of stopping at EOF
	Lines   int       // with Follow, start this many lines before the end; negative reads everything
	ReOpen  bool      // with Follow, reopen on rotation
	Poll    bool      // with Follow, poll instead of inotify
	MaxLine int       // longest accepted line; zero uses the logtail default
	Stdin   io.Reader // standard input override; nil uses os.Stdin
}

// Source is an opened input ready to hand to a Pump.
type Source struct {
	Name   string
	Lines  logtail.Lines
	closer io.Closer
}

// Close releases the underlying file or tailer.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// IsStdin reports whether path selects standard input.
func IsStdin(path string) bool {
	path = strings.TrimSpace(path)
	return path == "" || path == StdinName
}

// Open opens the input named by path. Compressed gzip and zstd inputs are
// decoded transparently, except in follow mode which reads plain text.
func Open(path string, opts OpenOptions) (*Source, error) {
	if IsStdin(path) {
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return &Source{
			Name:  "stdin",
			Lines: logtail.NewScanner(newAutoDecompressor(stdin), opts.MaxLine),
		}, nil
	}

	if opts.Follow {
		f, err := logtail.Follow(path, logtail.FollowOptions{
			Lines:   opts.Lines,
			ReOpen:  opts.ReOpen,
			Poll:    opts.Poll,
			MaxLine: opts.MaxLine,
		})
		if err != nil {
			return nil, err
		}
		return &Source{Name: path, Lines: f, closer: f}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	dec := newAutoDecompressor(file)
	return &Source{
		Name:   path,
		Lines:  logtail.NewScanner(dec, opts.MaxLine),
		closer: multiCloser{dec, file},
	}, nil
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// autoDecompressor sniffs the stream on first read so that opening a slow
// pipe never blocks the caller.
type autoDecompressor struct {
	src    io.Reader
	r      io.Reader
	closer io.Closer
	err    error
}

func newAutoDecompressor(src io.Reader) *autoDecompressor {
	return &autoDecompressor{src: src}
}

func (a *autoDecompressor) Read(p []byte) (int, error) {
	if a.r == nil && a.err == nil {
		a.r, a.closer, a.err = sniff(a.src)
	}
	if a.err != nil {
		return 0, a.err
	}
	return a.r.Read(p)
}

func (a *autoDecompressor) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func sniff(src io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(src)
	magic, err := peekMagic(br)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("open gzip input: %w", err)
		}
		return zr, zr, nil
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("open zstd input: %w", err)
		}
		rc := dec.IOReadCloser()
		return rc, rc, nil
	default:
		return br, nil, nil
	}
}

// peekMagic returns the leading bytes of br without consuming them. It only
// waits for more than the first read when those bytes could still begin a
// compression magic, so a short plain record on a live pipe is not held back.
func peekMagic(br *bufio.Reader) ([]byte, error) {
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	magic, _ := br.Peek(min(br.Buffered(), len(zstdMagic)))
	if len(magic) == len(zstdMagic) || !(isMagicPrefix(magic, gzipMagic) || isMagicPrefix(magic, zstdMagic)) {
		return magic, nil
	}
	magic, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return magic, nil
}

// isMagicPrefix reports whether b could be the start of magic.
func isMagicPrefix(b, magic []byte) bool {
	n := min(len(b), len(magic))
	return bytes.Equal(b[:n], magic[:n])
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var errs []error
	for _, c := range m {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
