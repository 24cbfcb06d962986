package app

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/jlv/internal/config"
	"github.com/five82/jlv/internal/ingest"
)

func TestPumpError(t *testing.T) {
	boom := errors.New("read input: boom")

	tests := []struct {
		name string
		res  ingest.Result
		ok   bool
		late *ingest.Result
		want error
	}{
		{name: "seen clean", res: ingest.Result{Records: 2}, ok: true},
		{name: "seen error", res: ingest.Result{Err: boom}, ok: true, want: boom},
		{name: "late error", late: &ingest.Result{Err: boom}, want: boom},
		{name: "still running"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan ingest.Result, 1)
			if tt.late != nil {
				done <- *tt.late
			}
			if got := pumpError(tt.res, tt.ok, done); !errors.Is(got, tt.want) {
				t.Fatalf("pumpError = %v, want %v", got, tt.want)
			}
		})
	}

	closed := make(chan ingest.Result)
	close(closed)
	if err := pumpError(ingest.Result{}, false, closed); err != nil {
		t.Fatalf("pumpError on closed channel = %v, want nil", err)
	}
}

func TestOpenSource_RejectsTerminalStdin(t *testing.T) {
	orig := stdinIsTerminal
	t.Cleanup(func() { stdinIsTerminal = orig })
	stdinIsTerminal = func() bool { return true }

	_, err := openSource(Options{Input: "-"}, config.Default())
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("openSource error = %v, want ErrNoInput", err)
	}
}

func TestOpenSource_FileUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.WriteFile(filepath.Join(home, "app.jsonl"), []byte("{\"message\":\"hi\"}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := openSource(Options{Input: "~/app.jsonl"}, config.Default())
	if err != nil {
		t.Fatalf("openSource returned error: %v", err)
	}
	defer src.Close()

	if want := filepath.Join(home, "app.jsonl"); src.Name != want {
		t.Fatalf("Name = %q, want %q", src.Name, want)
	}
	line, err := src.Lines.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if string(line) != `{"message":"hi"}` {
		t.Fatalf("line = %q", line)
	}
}

func TestOpenSource_MissingFile(t *testing.T) {
	_, err := openSource(Options{Input: filepath.Join(t.TempDir(), "nope.jsonl")}, config.Default())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("openSource error = %v, want os.ErrNotExist", err)
	}
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	path := filepath.Join(t.TempDir(), "jlv.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	log.Printf("hello from test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log file = %q, want it to contain the message", data)
	}

	closeLog, err = setupLogging("")
	if err != nil {
		t.Fatalf("setupLogging(\"\") returned error: %v", err)
	}
	closeLog()
}

func TestFieldNames(t *testing.T) {
	got := fieldNames(config.DefaultFields())
	if len(got.Level) == 0 || got.Level[0] != "level_name" || got.Context[1] != "extra" {
		t.Fatalf("fieldNames = %+v", got)
	}
}
