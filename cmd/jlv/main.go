package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/jlv/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: jlv [flags] [INPUT]\n\nINPUT is a JSON-lines file; omit it or pass - to read standard input.\n\n")
		flag.PrintDefaults()
	}
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	tick := flag.Duration("tick", 0, "drain and redraw interval (optional, defaults to 250ms)")
	follow := flag.Bool("f", false, "follow the file as it grows")
	lines := flag.Int("n", -1, "with -f, start this many lines from the end (-1 reads the whole file)")
	logPath := flag.String("log", "", "write debug log to this file (optional)")
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Input:      flag.Arg(0),
		Follow:     *follow,
		Lines:      *lines,
		Tick:       *tick,
		LogPath:    *logPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "jlv: %v\n", err)
		return 1
	}
	return 0
}
