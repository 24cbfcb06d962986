package ui

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/jlv/internal/ingest"
	"github.com/five82/jlv/internal/prefs"
	"github.com/five82/jlv/internal/record"
	"github.com/five82/jlv/internal/state"
)

// Options configures the UI.
type Options struct {
	Context context.Context

	// List receives every drained record. A fresh list is created when nil.
	List *state.RecordList
	// Queue is drained on every tick.
	Queue *ingest.Queue
	// Done delivers the pump's final Result.
	Done <-chan ingest.Result

	Fields      FieldNames
	Tick        time.Duration
	SourceName  string
	ThemeName   string
	HideContext bool
	PrefsPath   string

	// InputTTY reads keys from the controlling terminal instead of stdin.
	InputTTY bool
	// Input and Output override the program's streams. Used by tests.
	Input  io.Reader
	Output io.Writer
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	queue     *ingest.Queue
	done      <-chan ingest.Result
	fields    FieldNames
	tick      time.Duration
	source    string
	prefsPath string
	keys      keyMap

	// Data state
	list     *state.RecordList
	drained  bool // queue reported Closed; no more records will arrive
	finished bool // pump Result received
	result   ingest.Result

	// UI state
	theme       Theme
	width       int
	height      int
	ready       bool
	offset      int // first visible record
	showHelp    bool
	showDetail  bool
	showContext bool

	// Detail pane
	detailViewport viewport.Model
	detailIndex    int // record shown in the detail pane, -1 when none
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultTick
	}

	list := opts.List
	if list == nil {
		list = state.NewRecordList()
	}

	fields := opts.Fields
	if len(fields.Level)+len(fields.Time)+len(fields.Message)+len(fields.Context) == 0 {
		fields = DefaultFieldNames()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	source := opts.SourceName
	if source == "" {
		source = "stdin"
	}

	return Model{
		ctx:            ctx,
		queue:          opts.Queue,
		done:           opts.Done,
		fields:         fields,
		tick:           tick,
		source:         source,
		prefsPath:      opts.PrefsPath,
		keys:           DefaultKeyMap(),
		list:           list,
		theme:          GetTheme(themeName),
		showContext:    !opts.HideContext,
		detailViewport: viewport.New(0, 0),
		detailIndex:    -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tick), waitForContext(m.ctx)}
	if m.done != nil {
		cmds = append(cmds, waitForResult(m.done))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeDetail()
		m.ensureVisible()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case resultMsg:
		m.finished = true
		m.result = ingest.Result(msg)
		if m.result.Err != nil {
			log.Printf("input stopped: %v", m.result.Err)
		}
		return m, nil

	case contextDoneMsg:
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// Result returns the pump's final Result and whether it has arrived.
func (m Model) Result() (ingest.Result, bool) {
	return m.result, m.finished
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleContext):
		m.showContext = !m.showContext
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleDetail):
		m.showDetail = !m.showDetail
		m.resizeDetail()

	case key.Matches(msg, m.keys.Escape):
		m.showDetail = false
		m.resizeDetail()

	case key.Matches(msg, m.keys.Up):
		m.list.SelectUp(1)
	case key.Matches(msg, m.keys.Down):
		m.list.SelectDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.SelectUp(m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.list.SelectDown(m.listHeight())
	case key.Matches(msg, m.keys.Top):
		m.list.SelectFirst()
	case key.Matches(msg, m.keys.Bottom):
		m.list.SelectLast()

	case key.Matches(msg, m.keys.DetailDown):
		if m.showDetail {
			m.detailViewport.HalfPageDown()
		}
		return m, nil
	case key.Matches(msg, m.keys.DetailUp):
		if m.showDetail {
			m.detailViewport.HalfPageUp()
		}
		return m, nil

	default:
		return m, nil
	}

	m.ensureVisible()
	m.syncDetail()
	return m, nil
}

// handleTick drains every record currently queued, then re-arms the tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.drained && m.queue != nil {
	drain:
		for {
			rec, status := m.queue.TryRecv()
			switch status {
			case ingest.Received:
				m.list.Append(rec)
			case ingest.Empty:
				break drain
			case ingest.Closed:
				m.drained = true
				break drain
			}
		}
		m.syncDetail()
	}
	return m, tickCmd(m.tick)
}

// savePrefs persists the theme and context toggle. Failures are logged only.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, HideContext: !m.showContext}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// ensureVisible scrolls the list window so the selection is on screen.
func (m *Model) ensureVisible() {
	height := m.listHeight()
	idx, _, ok := m.list.Selection()
	if !ok {
		m.offset = 0
		return
	}
	if idx < m.offset {
		m.offset = idx
	}
	if idx >= m.offset+height {
		m.offset = idx - height + 1
	}
	// Fill the window from the bottom after a resize.
	if maxOffset := max(m.list.Len()-height, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

// resizeDetail fits the detail viewport to the current pane size.
func (m *Model) resizeDetail() {
	w, h := m.detailSize()
	m.detailViewport.Width = w
	m.detailViewport.Height = h
	m.detailIndex = -1
	m.syncDetail()
}

// syncDetail loads the selected record into the detail viewport when the
// selection changed.
func (m *Model) syncDetail() {
	if !m.showDetail {
		return
	}
	idx, rec, ok := m.list.Selection()
	if !ok {
		m.detailViewport.SetContent("")
		m.detailIndex = -1
		return
	}
	if idx == m.detailIndex {
		return
	}
	m.detailIndex = idx
	m.detailViewport.SetContent(detailContent(rec, m.detailViewport.Width))
	m.detailViewport.GotoTop()
}

// detailContent renders rec as indented JSON with every line clipped to width.
func detailContent(rec record.Record, width int) string {
	lines := strings.Split(string(record.Encode(rec, true)), "\n")
	for i, line := range lines {
		lines[i] = truncate(sanitize(line), width)
	}
	return strings.Join(lines, "\n")
}

// Messages

type tickMsg time.Time

type resultMsg ingest.Result

type contextDoneMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForResult(done <-chan ingest.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-done
		if !ok {
			return nil
		}
		return resultMsg(res)
	}
}

func waitForContext(ctx context.Context) tea.Cmd {
	done := ctx.Done()
	if done == nil {
		return nil
	}
	return func() tea.Msg {
		<-done
		return contextDoneMsg{}
	}
}

// Run starts the Bubble Tea program and returns the final model state.
func Run(opts Options) (Model, error) {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.InputTTY {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(New(opts), programOpts...)
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m, err
	}
	return New(opts), err
}
