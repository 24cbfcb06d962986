package logtail

import (
	"fmt"
	"io"
	"sync"

	"github.com/hpcloud/tail"
)

// FollowOptions configure a Follower.
type FollowOptions struct {
	// Lines starts following this many lines before the end of the file.
	// Negative values read the whole file first.
	Lines int
	// ReOpen reopens the path when the file is rotated or recreated.
	ReOpen bool
	// Poll uses stat polling instead of inotify.
	Poll bool
	// MaxLine splits longer lines; zero uses DefaultMaxLine.
	MaxLine int
}

// Follower tails a growing file, like tail -f.
type Follower struct {
	t    *tail.Tail
	stop chan struct{}
	once sync.Once
	err  error
}

// Follow starts tailing the file at path.
func Follow(path string, opts FollowOptions) (*Follower, error) {
	offset, err := TailOffset(path, opts.Lines)
	if err != nil {
		return nil, err
	}
	maxLine := opts.MaxLine
	if maxLine <= 0 {
		maxLine = DefaultMaxLine
	}

	t, err := tail.TailFile(path, tail.Config{
		Follow:      true,
		ReOpen:      opts.ReOpen,
		MustExist:   true,
		Poll:        opts.Poll,
		MaxLineSize: maxLine,
		Location:    &tail.SeekInfo{Offset: offset, Whence: io.SeekStart},
		Logger:      tail.DiscardingLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("follow %s: %w", path, err)
	}
	return &Follower{t: t, stop: make(chan struct{})}, nil
}

// Next blocks until the next line is written to the file. After Close it
// returns io.EOF.
func (f *Follower) Next() ([]byte, error) {
	var (
		line *tail.Line
		ok   bool
	)
	select {
	case <-f.stop:
		return nil, io.EOF
	case line, ok = <-f.t.Lines:
	}
	if !ok {
		if err := f.t.Wait(); err != nil {
			return nil, fmt.Errorf("follow: %w", err)
		}
		return nil, io.EOF
	}
	if line.Err != nil {
		return nil, &LineError{Err: line.Err}
	}
	return trimEOL([]byte(line.Text)), nil
}

// Close stops the tailer and releases its watches. It does not wait for the
// reader: lines still pending are discarded so the tail goroutine can exit.
func (f *Follower) Close() error {
	f.once.Do(func() {
		close(f.stop)
		drained := make(chan struct{})
		go func() {
			defer close(drained)
			for range f.t.Lines {
			}
		}()
		f.err = f.t.Stop()
		f.t.Cleanup()
		<-drained
	})
	return f.err
}
