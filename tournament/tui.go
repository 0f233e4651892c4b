package tournament

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// IsTerminal reports whether stdout looks like an interactive terminal,
// the gate between the bubbletea progress view and plain log.Printf
// lines (spec.md §4.8 "Reporting" NEW addition).
func IsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// progressMsg is posted by the collector as tasks complete.
type progressMsg struct {
	completed, total int64
	topFive          []Standing
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type progressModel struct {
	completed, total int64
	topFive          []Standing
	startTime        time.Time
	updates          <-chan progressMsg
}

func waitForProgress(updates <-chan progressMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return tea.Quit()
		}
		return msg
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(waitForProgress(m.updates), tickCmd())
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case progressMsg:
		m.completed = msg.completed
		m.total = msg.total
		m.topFive = msg.topFive
		if m.completed >= m.total {
			return m, tea.Quit
		}
		return m, waitForProgress(m.updates)
	case tickMsg:
		return m, tickCmd()
	}
	return m, nil
}

func (m progressModel) View() string {
	elapsed := time.Since(m.startTime)
	var eta time.Duration
	if m.completed > 0 {
		perTask := elapsed / time.Duration(m.completed)
		eta = perTask * time.Duration(m.total-m.completed)
	}

	s := headerStyle.Render("battleship tournament") + "\n"
	s += fmt.Sprintf("tasks: %d/%d  elapsed: %s  eta: %s\n\n", m.completed, m.total, elapsed.Round(time.Second), eta.Round(time.Second))
	s += headerStyle.Render("top 5") + "\n"
	for i, standing := range m.topFive {
		s += fmt.Sprintf("%d. %-28s winRate=%.3f games=%d\n", i+1, standing.Config, standing.WinRate(), standing.Games)
	}
	s += "\n" + dimStyle.Render("ctrl+c to cancel")
	return s
}

// ProgressReporter drives the bubbletea progress view in its own
// goroutine, fed by Tick calls from the collector loop.
type ProgressReporter struct {
	program *tea.Program
	updates chan progressMsg
	done    chan struct{}
}

// NewProgressReporter starts the TUI program. Callers must call Tick
// periodically and Stop when the run finishes.
func NewProgressReporter(total int64) *ProgressReporter {
	updates := make(chan progressMsg, 1)
	model := progressModel{total: total, startTime: timeNow(), updates: updates}
	program := tea.NewProgram(model)

	r := &ProgressReporter{program: program, updates: updates, done: make(chan struct{})}
	go func() {
		defer close(r.done)
		_, _ = program.Run()
	}()
	return r
}

// Tick pushes a fresh snapshot to the TUI. Non-blocking: when the render
// loop has not yet taken the previous snapshot, this one is dropped
// rather than backing up the collector.
func (r *ProgressReporter) Tick(completed, total int64, aggregator *Aggregator) {
	ranked := aggregator.Ranked()
	topN := 5
	if len(ranked) < topN {
		topN = len(ranked)
	}

	select {
	case r.updates <- progressMsg{completed: completed, total: total, topFive: ranked[:topN]}:
	default:
	}
}

// Stop closes the update channel and waits for the TUI goroutine to exit.
func (r *ProgressReporter) Stop() {
	close(r.updates)
	<-r.done
}

// timeNow exists only so tests never call time.Now() directly from
// package-level code paths that a workflow harness might replay.
func timeNow() time.Time { return time.Now() }
