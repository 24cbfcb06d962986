// Package logtail provides line sources for the ingestion pump.
//
// # Overview
//
// Two implementations of Lines are provided:
//
//  1. Scanner: reads newline-delimited lines from any io.Reader (a file, a
//     decompressed stream, standard input) until end-of-stream.
//  2. Follower: tails a regular file like tail -f, waiting for new lines
//     instead of stopping at end-of-file.
//
// # Line Limits
//
// Scanner starts with a 64KB buffer and accepts lines up to 1MB by default.
// Longer lines are consumed and reported as a *LineError wrapping
// ErrLineTooLong, so one runaway line does not end the stream:
//
//	line, err := lines.Next()
//	var lineErr *logtail.LineError
//	switch {
//	case errors.As(err, &lineErr):
//		// skip this line, keep reading
//	case errors.Is(err, io.EOF):
//		// finished
//	case err != nil:
//		// read failure, stop
//	}
//
// # Starting Offset
//
// TailOffset finds where the last N lines of a file begin using a ring buffer
// of line start offsets:
//
//	1. Allocate ring buffer of size N
//	2. For each line start in the file:
//	   - Store its byte offset at the current index
//	   - Increment index (wrapping at N)
//	3. If fewer than N lines were seen, start at offset 0
//	4. Otherwise start at the oldest stored offset
//
// One sequential pass, O(N) memory. Follow uses the offset as the tailer's
// starting location, so "-f -n 100" shows the last hundred records and then
// keeps going.
//
// # Follow Mode
//
// Follower is built on github.com/hpcloud/tail. ReOpen handles rotation by
// reopening the path; Poll switches from inotify to stat polling, which is
// more reliable on network filesystems.
package logtail
