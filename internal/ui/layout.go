package ui

import "time"

// Screen layout.
const (
	// statusBarHeight is the number of rows under the record box.
	statusBarHeight = 1

	// boxChrome is the rows or columns a bordered box spends on its border.
	boxChrome = 2

	// detailPanePercent is the share of the body given to the detail pane.
	detailPanePercent = 40

	// minListRows keeps the record list usable when the detail pane is open.
	minListRows = 3

	// levelWidth is the column width of the severity label.
	levelWidth = 9

	// helpModalWidth is the width of the help overlay.
	helpModalWidth = 44
)

// DefaultTick is the drain and redraw period when none is configured.
const DefaultTick = 250 * time.Millisecond
