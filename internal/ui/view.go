package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/jlv/internal/record"
)

// renderMain renders the record box, the optional detail pane and the
// status bar.
func (m Model) renderMain() string {
	var b strings.Builder

	listBox, detailBox := m.boxHeights()
	b.WriteString(m.renderBox(recordBoxKind, " "+sanitize(m.source)+" ", m.renderList(), m.width, listBox, !m.showDetail))
	b.WriteString("\n")

	if detailBox > 0 {
		b.WriteString(m.renderBox(detailBoxKind, " JSON ", m.detailViewport.View(), m.width, detailBox, true))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	return b.String()
}

// boxHeights splits the body between the record box and the detail pane.
// A zero detail height means the pane is hidden.
func (m Model) boxHeights() (list, detail int) {
	body := max(m.height-statusBarHeight, boxChrome+1)
	if !m.showDetail {
		return body, 0
	}
	detail = body * detailPanePercent / 100
	detail = min(detail, body-(minListRows+boxChrome))
	if detail < boxChrome+1 {
		return body, 0
	}
	return body - detail, detail
}

// listHeight is the number of record rows that fit in the record box.
func (m Model) listHeight() int {
	list, _ := m.boxHeights()
	return max(list-boxChrome, 1)
}

// detailSize is the viewport size inside the detail box.
func (m Model) detailSize() (width, height int) {
	_, detail := m.boxHeights()
	return max(m.width-boxChrome, 0), max(detail-boxChrome, 0)
}

// renderList renders the visible window of records.
func (m Model) renderList() string {
	width := max(m.width-boxChrome, 1)
	height := m.listHeight()
	bg := NewBgStyle(m.theme.Background)

	if m.list.Len() == 0 {
		styles := m.theme.Styles()
		msg := "Waiting for records..."
		if m.drained {
			msg = "No records."
		}
		return bg.FillLine(bg.Render(msg, styles.FaintText), width)
	}

	selected, _, _ := m.list.Selection()
	rows := m.list.Window(m.offset, height)
	lines := make([]string, 0, len(rows))
	for i, rec := range rows {
		lines = append(lines, m.renderRow(rec, m.offset+i == selected, width, bg))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one record as a single terminal line of exactly width cells.
func (m Model) renderRow(rec record.Record, selected bool, width int, bg BgStyle) string {
	row := Project(rec, m.fields)
	when := sanitize(row.Time)
	level := padRight(sanitize(row.Level), levelWidth)
	message := sanitize(row.Message)
	context := ""
	if m.showContext {
		context = sanitize(row.ContextText())
	}

	styles := m.theme.Styles()
	if selected {
		parts := []string{when, level, message}
		if context != "" {
			parts = append(parts, " "+context)
		}
		line := truncate(strings.Join(parts, " "), width)
		return styles.Selected.Render(padRight(line, width))
	}

	parts := []string{
		bg.Render(when, styles.MutedText),
		bg.Render(level, styles.LevelStyle(row.Level)),
		bg.Render(message, styles.Text),
	}
	if context != "" {
		parts = append(parts, bg.Spaces(1)+bg.Render(context, styles.FaintText))
	}
	return bg.FillLine(truncate(bg.Join(parts, " "), width), width)
}

type boxKind int

const (
	recordBoxKind boxKind = iota
	detailBoxKind
)

// boxColors returns the fill color and title style for a box. The detail
// pane uses the alternate surface and the info color.
func (m Model) boxColors(kind boxKind) (string, lipgloss.Style) {
	if kind == detailBoxKind {
		return m.theme.SurfaceAlt, m.theme.Styles().WithBackground(m.theme.SurfaceAlt).InfoText.Bold(true)
	}
	return m.theme.Background, m.theme.Styles().WithBackground(m.theme.Background).AccentText.Bold(true)
}

// renderBox draws content inside a rounded border with title set into the
// top edge. Content is clipped to the box.
func (m Model) renderBox(kind boxKind, title, content string, width, height int, focused bool) string {
	innerW := max(width-boxChrome, 1)
	innerH := max(height-boxChrome, 1)
	bg, titleStyle := m.boxColors(kind)

	borderColor := m.theme.Border
	if focused {
		borderColor = m.theme.BorderFocus
	}
	border := lipgloss.RoundedBorder()
	borderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(borderColor)).
		Background(lipgloss.Color(bg))

	title = truncate(title, max(innerW-1, 0))
	fill := max(innerW-1-lipgloss.Width(title), 0)
	top := borderStyle.Render(border.TopLeft+border.Top) +
		titleStyle.Render(title) +
		borderStyle.Render(strings.Repeat(border.Top, fill)+border.TopRight)

	body := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Width(innerW).
		Height(innerH).
		MaxHeight(innerH + 1).
		Render(content)

	return top + "\n" + body
}

// renderStatus renders the one-line status bar below the boxes.
func (m Model) renderStatus() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("jlv", styles.AccentText.Bold(true)),
		m.renderSourceState(styles, bg),
	}

	total := m.list.Len()
	if idx, _, ok := m.list.Selection(); ok {
		parts = append(parts, bg.Render(fmt.Sprintf("%d / %d", idx+1, total), styles.Text.Bold(true)))
	} else {
		parts = append(parts, bg.Render(humanize.Comma(int64(total))+" records", styles.MutedText))
	}

	if m.finished {
		parts = append(parts, bg.Render(humanize.Bytes(uint64(max(m.result.Bytes, 0)))+" read", styles.MutedText))
		if m.result.Malformed > 0 {
			parts = append(parts, bg.Render(humanize.Comma(int64(m.result.Malformed))+" skipped", styles.WarningText))
		}
	}
	if !m.showContext {
		parts = append(parts, bg.Render("context hidden", styles.FaintText))
	}

	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, bg.Render(h.Key, styles.AccentText)+bg.Spaces(1)+bg.Render(strings.ToLower(h.Desc), styles.FaintText))
	}

	content := bg.Spaces(1) + bg.Join(parts, "  ")
	return bg.FillLine(truncate(content, m.width), m.width)
}

// renderSourceState describes where the pump is: still streaming, finished
// at end of input, or stopped by a read error.
func (m Model) renderSourceState(styles Styles, bg BgStyle) string {
	switch {
	case !m.finished:
		return bg.Render("streaming", styles.SuccessText)
	case m.result.Err != nil:
		return bg.Render("error: "+sanitize(m.result.Err.Error()), styles.DangerText)
	default:
		return bg.Render("finished", styles.MutedText)
	}
}
