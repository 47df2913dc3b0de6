// Package tui shows scan progress while a manifest run is in flight.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/jwils/scribe/internal/app"
	"github.com/jwils/scribe/internal/config"
	"github.com/jwils/scribe/internal/scanner"
)

// Style definitions for the progress display.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// scanDots is the spinner shown while the walk is running.
var scanDots = spinner.Spinner{
	Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	FPS:    time.Second / 10,
}

type progressMsg scanner.Progress

type doneMsg struct {
	summary app.Summary
	err     error
}

type model struct {
	spinner  spinner.Model
	events   chan tea.Msg
	progress scanner.Progress
	summary  app.Summary
	err      error
	done     bool
}

// Run executes the pipeline behind a progress display and returns its
// result once the run completes.
func Run(ctx context.Context, cfg config.Config) (app.Summary, error) {
	events := make(chan tea.Msg, 64)

	s := spinner.New()
	s.Spinner = scanDots
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	go func() {
		scanCtx := scanner.WithProgressCallback(ctx, func(p scanner.Progress) {
			select {
			case events <- progressMsg(p):
			default:
				// The display lags behind the walk; dropping updates is fine.
			}
		})
		summary, err := app.Run(scanCtx, cfg)
		events <- doneMsg{summary: summary, err: err}
	}()

	final, err := tea.NewProgram(model{spinner: s, events: events}).Run()
	if err != nil {
		return app.Summary{}, err
	}

	m := final.(model)
	if !m.done {
		return app.Summary{}, errors.New("scan interrupted")
	}
	return m.summary, m.err
}

// Init returns an initial command
func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

// next waits for the next event from the scan goroutine.
func (m model) next() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

// Update handles messages
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.progress = scanner.Progress(msg)
		return m, m.next()

	case doneMsg:
		m.summary = msg.summary
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the UI
func (m model) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	s := titleStyle.Render("Scribe - scanning codebase")
	s += "\n\n"
	s += fmt.Sprintf("%s %d files seen, %d collected",
		m.spinner.View(), m.progress.FilesSeen, m.progress.Included)
	if m.progress.CurrentFile != "" {
		s += "\n" + fileStyle.Render(m.progress.CurrentFile)
	}

	return tea.NewView(s)
}
