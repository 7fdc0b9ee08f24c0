// Package tui is the live dashboard: the usage report rendered as a
// scrollable list, refreshed when the store file changes on disk.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/ibra/lachesis/internal/app"
	"github.com/ibra/lachesis/internal/output"
	"github.com/ibra/lachesis/internal/report"
	"github.com/ibra/lachesis/internal/store"
)

// refreshInterval is the fallback reload cadence when file watching is
// unavailable (and a safety net when it is).
const refreshInterval = 30 * time.Second

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Monitor() (app.MonitorStatus, error)
	StartMonitor() (app.StartResult, error)
	List(app.ListParams) (app.ListResult, error)
}

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller
	watcher    *fsnotify.Watcher

	list     list.Model
	rows     []report.Row
	maxUsage uint64

	monitor   app.MonitorStatus
	statusMsg string

	err     error
	loading bool
	today   bool

	width  int
	height int

	lastUpdated time.Time
}

// New constructs a TUI model. The watcher may be nil; the periodic tick
// still refreshes the view.
func New(ctrl Controller, watcher *fsnotify.Watcher) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Tracked usage"
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	return &Model{
		controller: ctrl,
		watcher:    watcher,
		list:       lst,
		statusMsg:  "Checking laches-mon…",
		loading:    true,
	}
}

// Run spins up the Bubble Tea program against the given store directory,
// watching it for changes while the dashboard is open.
func Run(ctrl Controller, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			watcher = nil
		}
	} else {
		watcher = nil
	}
	if watcher != nil {
		defer watcher.Close()
	}

	m := New(ctrl, watcher)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err = prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		checkMonitorCmd(m.controller),
		loadReportCmd(m.controller, m.today),
		tickCmd(),
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForStoreChangeCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 4 {
			m.list.SetSize(msg.Width, msg.Height-4)
		}

	case monitorStatusMsg:
		m.monitor = msg.status
		if msg.status.Running {
			m.statusMsg = fmt.Sprintf("laches-mon running (pid %d). Press t to toggle today, r to refresh, q to quit.", msg.status.PID)
		} else {
			m.statusMsg = "laches-mon is not running. Press s to start it."
		}

	case reportLoadedMsg:
		m.loading = false
		m.err = nil
		m.rows = msg.result.Report.Rows
		m.maxUsage = msg.result.Report.MaxUsage
		m.list.Title = fmt.Sprintf("Tracked usage (%s mode)", msg.result.Mode.Label())
		items := make([]list.Item, 0, len(m.rows))
		for _, row := range m.rows {
			items = append(items, usageItem{row: row})
		}
		m.list.SetItems(items)
		m.lastUpdated = time.Now()

	case monitorStartedMsg:
		m.statusMsg = "laches-mon started."
		return m, tea.Batch(checkMonitorCmd(m.controller), loadReportCmd(m.controller, m.today))

	case storeChangedMsg:
		cmds := []tea.Cmd{
			checkMonitorCmd(m.controller),
			loadReportCmd(m.controller, m.today),
		}
		if m.watcher != nil {
			cmds = append(cmds, waitForStoreChangeCmd(m.watcher))
		}
		return m, tea.Batch(cmds...)

	case tickMsg:
		return m, tea.Batch(
			checkMonitorCmd(m.controller),
			loadReportCmd(m.controller, m.today),
			tickCmd(),
		)

	case errMsg:
		m.loading = false
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadReportCmd(m.controller, m.today)
		case "t":
			m.today = !m.today
			m.loading = true
			return m, loadReportCmd(m.controller, m.today)
		case "s":
			if !m.monitor.Running {
				m.statusMsg = "Starting laches-mon…"
				return m, startMonitorCmd(m.controller)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Bold(true)
	if !m.monitor.Running {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	} else {
		statusStyle = statusStyle.Foreground(lipgloss.Color("42"))
	}
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	if m.loading {
		b.WriteString("Loading usage…\n")
	} else if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.list.Items()) == 0 && !m.loading && m.err == nil {
		b.WriteString("No recorded usage yet.\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	if current := m.currentRow(); current != nil {
		detail := fmt.Sprintf(
			"%s\n%s %s\nlast seen %s\ntags=[%s]",
			current.Title,
			output.Bar(current.Usage, m.maxUsage),
			output.Uptime(current.Usage),
			current.LastSeen,
			strings.Join(current.Tags, ","),
		)
		detailStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
		b.WriteString(detailStyle.Render(detail))
		b.WriteByte('\n')
	}

	view := "all time"
	if m.today {
		view = "today (" + store.Today() + ")"
	}
	help := fmt.Sprintf("Commands: q quit • r reload • t toggle today • s start laches-mon • view: %s", view)
	if !m.lastUpdated.IsZero() {
		help += fmt.Sprintf(" • last update %s", m.lastUpdated.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// usageItem adapts a report row to the bubbles list item interface.
type usageItem struct {
	row report.Row
}

func (u usageItem) Title() string {
	return fmt.Sprintf("%s  %s", u.row.Title, output.Uptime(u.row.Usage))
}

func (u usageItem) Description() string {
	tags := "no tags"
	if len(u.row.Tags) > 0 {
		tags = "[" + strings.Join(u.row.Tags, ", ") + "]"
	}
	return fmt.Sprintf("last seen %s | %s", u.row.LastSeen, tags)
}

func (u usageItem) FilterValue() string {
	return fmt.Sprintf("%s %s", u.row.Title, strings.Join(u.row.Tags, " "))
}

func (m *Model) currentRow() *report.Row {
	if len(m.rows) == 0 {
		return nil
	}
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.rows) {
		return nil
	}
	return &m.rows[idx]
}

type monitorStatusMsg struct {
	status app.MonitorStatus
}

type reportLoadedMsg struct {
	result app.ListResult
}

type monitorStartedMsg struct{}

type storeChangedMsg struct{}

type tickMsg time.Time

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func checkMonitorCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		status, err := ctrl.Monitor()
		if err != nil {
			return errMsg{err}
		}
		return monitorStatusMsg{status: status}
	}
}

func loadReportCmd(ctrl Controller, today bool) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.List(app.ListParams{Today: today})
		if err != nil {
			return errMsg{err}
		}
		return reportLoadedMsg{result: res}
	}
}

func startMonitorCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		if _, err := ctrl.StartMonitor(); err != nil {
			return errMsg{err}
		}
		// Give the poller a moment to come up before re-checking.
		time.Sleep(300 * time.Millisecond)
		return monitorStartedMsg{}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForStoreChangeCmd blocks until the store file is rewritten. Renames
// count: saves land via rename onto the store path.
func waitForStoreChangeCmd(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(ev.Name) != store.StoreName {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return storeChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return errMsg{err}
			}
		}
	}
}
