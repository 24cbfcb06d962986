package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/five82/jlv/internal/config"
	"github.com/five82/jlv/internal/ingest"
	"github.com/five82/jlv/internal/prefs"
	"github.com/five82/jlv/internal/state"
	"github.com/five82/jlv/internal/ui"
)

// ErrNoInput is returned when jlv would read records from an interactive
// terminal.
var ErrNoInput = errors.New("no input: pipe JSON lines to jlv or pass a file")

// Options configure the jlv application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/jlv/prefs.toml
	Input      string        // file path; "" or "-" reads standard input
	Follow     bool          // keep reading the file as it grows
	Lines      int           // with Follow, start this many lines from the end; negative reads all
	Tick       time.Duration // zero uses the configured tick
	LogPath    string        // debug log file; empty discards log output
}

// Run boots the jlv TUI and blocks until the operator quits or the context
// is cancelled. A read failure of the input is returned after the UI exits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Tick > 0 {
		cfg.Tick = opts.Tick
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	closeLog, err := setupLogging(opts.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := openSource(opts, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Printf("close input: %v", err)
		}
	}()

	queue := ingest.NewQueue()
	pump := ingest.NewPump(src.Lines, queue)
	pump.Start()
	log.Printf("reading %s (tick %s)", src.Name, cfg.Tick)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	final, err := ui.Run(ui.Options{
		Context:     ctx,
		List:        state.NewRecordList(),
		Queue:       queue,
		Done:        pump.Done(),
		Fields:      fieldNames(cfg.Fields),
		Tick:        cfg.Tick,
		SourceName:  src.Name,
		ThemeName:   userPrefs.Theme,
		HideContext: userPrefs.HideContext,
		PrefsPath:   prefsPath,
		InputTTY:    ingest.IsStdin(opts.Input),
	})
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	res, ok := final.Result()
	return pumpError(res, ok, pump.Done())
}

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func openSource(opts Options, cfg config.Config) (*ingest.Source, error) {
	input := opts.Input
	if ingest.IsStdin(input) {
		if stdinIsTerminal() {
			return nil, ErrNoInput
		}
	} else {
		expanded, err := config.ExpandPath(input)
		if err != nil {
			return nil, fmt.Errorf("resolve input: %w", err)
		}
		input = expanded
	}

	return ingest.Open(input, ingest.OpenOptions{
		Follow:  opts.Follow,
		Lines:   opts.Lines,
		ReOpen:  opts.Follow,
		MaxLine: cfg.MaxLineBytes,
	})
}

// setupLogging routes the standard logger to path, or discards it. The
// terminal belongs to the UI, so log output never goes to stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	f, err := tea.LogToFile(expanded, "jlv")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		log.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}

// pumpError returns the read failure, if any, from the result the UI saw or
// from one that arrived after it quit.
func pumpError(res ingest.Result, ok bool, done <-chan ingest.Result) error {
	if ok {
		return res.Err
	}
	select {
	case late, open := <-done:
		if open {
			return late.Err
		}
	default:
	}
	return nil
}

func fieldNames(f config.Fields) ui.FieldNames {
	return ui.FieldNames{
		Level:   f.Level,
		Time:    f.Time,
		Message: f.Message,
		Context: f.Context,
	}
}
