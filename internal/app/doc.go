// Package app provides the orchestration layer for jlv.
//
// # Overview
//
// This package wires together configuration, preferences, the input source,
// the ingestion pump and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read ~/.config/jlv/config.toml
//	       ├─────> prefs.Load()      Theme and context toggle
//	       ├─────> setupLogging()    log → -log file, or discarded
//	       ├─────> ingest.Open()     File, follower or stdin
//	       ├─────> ingest.Pump       Parse lines on its own goroutine
//	       └─────> ui.Run()          Start TUI (blocks)
//
//	Pump goroutine                     Bubble Tea loop
//	┌──────────────────┐  Queue   ┌───────────────────────┐
//	│ read → parse     │ ───────► │ tick: drain, append    │
//	│ skip malformed   │          │ keys: move selection   │
//	│ Close on stop    │  Done()  │ View: project rows     │
//	│ Result ──────────┼────────► │ status: finished/error │
//	└──────────────────┘          └───────────────────────┘
//
// # Exit Handling
//
// When the operator quits, Run closes the source and returns the pump's read
// failure if one was reported, so the process exits non-zero after a broken
// pipe or a vanished file. A clean end of input returns nil.
//
// # Standard Input
//
// When reading records from standard input, keys come from the controlling
// terminal. Run refuses to start when standard input is itself a terminal,
// since there would be nothing to read.
package app
