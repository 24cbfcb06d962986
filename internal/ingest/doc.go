// Package ingest moves records from an input source to the UI.
//
// # Data Flow
//
//	┌────────────┐   lines   ┌──────────┐  records  ┌─────────┐  TryRecv  ┌──────────┐
//	│  Source    │──────────→│   Pump   │──────────→│  Queue  │←──────────│ UI tick  │
//	│ file/stdin │           │ goroutine│           │ (FIFO)  │           │  drain   │
//	└────────────┘           └────┬─────┘           └─────────┘           └──────────┘
//	                              │ Done() <- Result
//	                              └──────────────────────────────────────→ status bar
//
// The Pump runs on its own goroutine from Start until the source ends or a
// read fails. It never waits on the UI: the Queue is unbounded, and the UI
// drains it with TryRecv, which never blocks.
//
// # End of Stream
//
// When the pump stops it closes the Queue and publishes one Result on Done.
// The consumer sees Closed from TryRecv only after every queued record was
// received, so ordering is preserved up to the last line. A clean
// end-of-stream leaves Result.Err nil; a read failure is reported there and
// never through the Queue.
//
// # Malformed Lines
//
// Lines that do not parse as a JSON object are skipped and counted in
// Result.Malformed. The skip is logged with its line number through the
// standard logger, which the app routes to the debug log file.
//
// # Sources
//
// Open selects standard input for "" or "-", a follow-mode tailer for -f on a
// regular file, and a plain reader otherwise. gzip and zstd inputs are
// detected by magic bytes on the first read.
package ingest
