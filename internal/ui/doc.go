// Package ui provides the Bubble Tea terminal interface for jlv.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program. Bubble Tea owns the terminal: it
// enters raw mode and the alternate screen once, reads keys on its own
// goroutine and redraws after every message. It restores the terminal on
// every exit path, including a panic inside Update or View.
//
//	┌──────────────────────────────────────────────────────────┐
//	│                    Bubble Tea program                    │
//	│                                                          │
//	│   tickMsg ──► drain Queue (TryRecv until Empty/Closed)   │
//	│                   │                                      │
//	│                   ▼                                      │
//	│   KeyMsg ──► state.RecordList ◄── View (read-only,       │
//	│                                    Project per row)      │
//	│   resultMsg ──► status bar (finished / error)            │
//	└──────────────────────────────────────────────────────────┘
//
// # Package Structure
//
//   - app.go: Model, Update loop, commands and Run
//   - view.go: record box, detail pane and status bar rendering
//   - projection.go: Project, the pure record-to-row mapping
//   - keys.go: key bindings (bubbles/key)
//   - help.go: help overlay built from the key map
//   - theme.go: color themes and level colors
//   - style_helpers.go: BgStyle for gap-free backgrounds
//   - strings.go: width-aware truncation (x/ansi)
//   - layout.go: layout constants
//
// # Tick and Drain
//
// Init schedules a tea.Tick. Each tickMsg drains the ingest queue without
// blocking and re-arms the tick, so records appear at most one tick after
// they are parsed regardless of key activity. Once the queue reports Closed
// the model stops draining for good.
//
// # Rendering
//
// The list stores raw records. Rows are produced at render time by Project
// using the configured candidate field names, so changing the context toggle
// or theme re-renders existing records without touching the list. Only the
// visible window is projected.
//
// # Key Bindings
//
//	q, ctrl+c       quit
//	k/up, j/down    previous / next record
//	pgup, pgdown    move by one screen of records
//	g/home, G/end   first / last record
//	enter           toggle the JSON detail pane
//	ctrl+u, ctrl+d  scroll the detail pane
//	esc             close the detail pane
//	c               toggle context pairs
//	T               cycle theme
//	h, ?            help
//
// Theme and context toggles are written to the prefs file immediately.
package ui
