// Package ui shows a spinner while a background scan runs. The bubbletea
// model never touches the scan itself; it only polls the task handle on a
// timer, so scans stay testable in isolation.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pollInterval = 100 * time.Millisecond

type pollMsg struct{}

// ProgressModel is a minimal bubbletea model: spinner plus a poll
// callback that reports when the background task has finished.
type ProgressModel struct {
	spinner spinner.Model
	message string
	poll    func() bool
	done    bool
}

// NewProgress creates a progress model. poll must be non-blocking and
// return true once the underlying task has completed.
func NewProgress(message string, poll func() bool) ProgressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"})

	return ProgressModel{
		spinner: sp,
		message: message,
		poll:    poll,
	}
}

// Init implements tea.Model
func (m ProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, pollTick())
}

// Update implements tea.Model
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		if m.poll() {
			m.done = true
			return m, tea.Quit
		}
		return m, pollTick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		// No cancellation: the scan runs to completion either way, but
		// ctrl+c stops waiting on it.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m ProgressModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.message + "\n"
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

// RunProgress blocks, rendering a spinner until poll reports completion.
func RunProgress(message string, poll func() bool) error {
	program := tea.NewProgram(NewProgress(message, poll))
	_, err := program.Run()
	return err
}
