// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements the installation progress screen.
package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Kryndex/developer-platform-install/internal/domain"
	"github.com/Kryndex/developer-platform-install/internal/engine"
	"github.com/Kryndex/developer-platform-install/internal/tui/styles"
)

// UI layout constants.
const (
	maxProgressWidth        = 100
	progressBarPadding      = 50
	defaultProgressBarWidth = 50
	overallBarWidth         = 30
	maxLogEntries           = 10
	nameColumnWidth         = 28
)

// EngineEventMsg wraps a controller event for the Bubble Tea loop.
type EngineEventMsg struct {
	Event any
}

// Retrier re-enters the download path for a failed unit. Implemented by
// the orchestration controller.
type Retrier interface {
	DownloadAgain(ctx context.Context, key string) error
}

// Task mirrors one unit's pipeline for rendering.
type Task struct {
	Key     string
	Name    string
	State   domain.State
	Status  string
	Label   string
	Percent int
	Error   string
}

// Install is the installation progress screen model.
//
//nolint:containedctx // TUI models require context for cancellation propagation
type Install struct {
	styles       *styles.Styles
	width        int
	height       int
	tasks        []Task
	index        map[string]int
	progressBars map[string]progress.Model
	spinner      spinner.Model
	logs         []string
	startTime    time.Time
	completed    bool
	quitting     bool
	showingLogs  bool
	selected     int
	dialogKey    string

	summary engine.DoneEvent

	ctx     context.Context
	retrier Retrier
}

// NewInstall creates the progress screen for the given units in registry
// order.
func NewInstall(ctx context.Context, styleConfig *styles.Styles, units []domain.Installable, retrier Retrier) *Install {
	tasks := make([]Task, len(units))
	index := make(map[string]int, len(units))
	progressBars := make(map[string]progress.Model, len(units))

	for i, unit := range units {
		tasks[i] = Task{
			Key:   unit.Key(),
			Name:  unit.DisplayName(),
			State: unit.State(),
		}
		index[unit.Key()] = i

		bar := progress.New(progress.WithDefaultGradient())
		bar.Width = defaultProgressBarWidth
		progressBars[unit.Key()] = bar
	}

	installSpinner := spinner.New()
	installSpinner.Spinner = spinner.Dot
	installSpinner.Style = lipgloss.NewStyle().Foreground(styleConfig.Primary)

	return &Install{
		styles:       styleConfig,
		tasks:        tasks,
		index:        index,
		progressBars: progressBars,
		spinner:      installSpinner,
		logs:         make([]string, 0, maxLogEntries),
		startTime:    time.Now(),
		ctx:          ctx,
		retrier:      retrier,
	}
}

// Init initializes the progress model.
func (m *Install) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the Install model.
func (m *Install) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EngineEventMsg:
		return m.handleEngineEvent(msg.Event)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Install) handleEngineEvent(event any) (tea.Model, tea.Cmd) {
	switch event := event.(type) {
	case engine.ProgressEvent:
		m.applyProgress(event)
	case engine.StateEvent:
		m.applyState(event)
	case engine.FailureEvent:
		m.applyFailure(event)
	case engine.RetryEvent:
		m.applyRetry(event)
	case engine.DoneEvent:
		m.completed = true
		m.summary = event
		m.addLog(fmt.Sprintf("Finished: %d installed, %d failed, %d skipped",
			event.Installed, event.Failed, event.Skipped))
	}

	return m, nil
}

func (m *Install) applyProgress(event engine.ProgressEvent) {
	taskIndex, ok := m.index[event.Key]
	if !ok {
		return
	}

	// Bars render stateless via ViewAs from Task.Percent; no animation
	// state to update here.
	m.tasks[taskIndex].Status = event.Status
	m.tasks[taskIndex].Label = event.Label
	m.tasks[taskIndex].Percent = event.Percent
}

func (m *Install) applyState(event engine.StateEvent) {
	taskIndex, ok := m.index[event.Key]
	if !ok {
		return
	}

	m.tasks[taskIndex].State = event.State

	switch event.State {
	case domain.StateDownloading:
		m.addLog(m.tasks[taskIndex].Name + ": downloading installer")
	case domain.StateInstalling:
		m.addLog(m.tasks[taskIndex].Name + ": installing")
	case domain.StateInstalled:
		m.tasks[taskIndex].Percent = 100
		m.addLog(m.tasks[taskIndex].Name + ": installation completed")
	case domain.StateSkipped:
		m.addLog(m.tasks[taskIndex].Name + ": skipped")
	case domain.StateNotDownloaded, domain.StateDownloaded, domain.StateFailed:
	}
}

func (m *Install) applyFailure(event engine.FailureEvent) {
	taskIndex, ok := m.index[event.Key]
	if !ok {
		return
	}

	m.tasks[taskIndex].Error = event.Err.Error()
	m.dialogKey = event.Key
	m.addLog(m.tasks[taskIndex].Name + ": failed: " + event.Err.Error())
}

func (m *Install) applyRetry(event engine.RetryEvent) {
	taskIndex, ok := m.index[event.Key]
	if !ok {
		return
	}

	// Retry closes the error dialog bound to the unit.
	if m.dialogKey == event.Key {
		m.dialogKey = ""
	}

	m.tasks[taskIndex].Error = ""
	m.completed = false
	m.addLog(m.tasks[taskIndex].Name + ": retrying download")
}

func (m *Install) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true

		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

		return m, nil
	case "down", "j":
		if m.selected < len(m.tasks)-1 {
			m.selected++
		}

		return m, nil
	case "l":
		m.showingLogs = !m.showingLogs

		return m, nil
	case "r":
		return m, m.retrySelected()
	case "esc":
		if m.dialogKey != "" {
			m.dialogKey = ""
		}

		return m, nil
	}

	return m, nil
}

// retrySelected re-triggers the download of the selected failed task.
func (m *Install) retrySelected() tea.Cmd {
	if m.selected >= len(m.tasks) || m.retrier == nil {
		return nil
	}

	task := m.tasks[m.selected]
	if task.State != domain.StateFailed {
		return nil
	}

	return func() tea.Msg {
		if err := m.retrier.DownloadAgain(m.ctx, task.Key); err != nil {
			return EngineEventMsg{Event: engine.FailureEvent{Key: task.Key, Err: err}}
		}

		return nil
	}
}

func (m *Install) addLog(entry string) {
	m.logs = append(m.logs, entry)
	if len(m.logs) > maxLogEntries {
		m.logs = m.logs[len(m.logs)-maxLogEntries:]
	}
}

// View renders the progress screen.
func (m *Install) View() string {
	if m.quitting && !m.completed {
		return "Installation cancelled.\n"
	}

	sections := []string{
		m.renderHeader(),
		m.renderTasks(),
	}

	if m.dialogKey != "" {
		sections = append(sections, m.renderErrorDialog())
	}

	if m.showingLogs {
		sections = append(sections, m.renderLogs())
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Install) renderHeader() string {
	title := "⚬ Installing Developer Platform"
	if m.completed {
		if m.summary.Failed > 0 {
			title = "✗ Installation Finished With Failures"
		} else {
			title = "✓ Installation Complete"
		}
	}

	done := 0
	hasErrors := false

	for _, task := range m.tasks {
		if task.State.Terminal() {
			done++
		}

		if task.State == domain.StateFailed {
			hasErrors = true
		}
	}

	subtitle := fmt.Sprintf("%d/%d components • elapsed %s",
		done, len(m.tasks), time.Since(m.startTime).Round(time.Second))
	overall := m.styles.ContextualProgressBar(done, len(m.tasks), overallBarWidth, hasErrors, m.completed)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		m.styles.Subtitle.Render(subtitle),
		overall,
	)
}

func (m *Install) renderTasks() string {
	lines := make([]string, 0, len(m.tasks)*2)

	for taskIndex, task := range m.tasks {
		lines = append(lines, m.renderTask(taskIndex, task))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Primary).
		Padding(1, 2).
		Width(m.availableWidth()).
		Render(strings.Join(lines, "\n"))
}

func (m *Install) renderTask(taskIndex int, task Task) string {
	icon := m.styles.StatusIcon(string(task.State))
	name := runewidth.FillRight(runewidth.Truncate(task.Name, nameColumnWidth, "…"), nameColumnWidth)

	nameStyle := m.styles.Unselected

	switch {
	case task.State == domain.StateInstalled:
		nameStyle = m.styles.SuccessText
	case task.State == domain.StateFailed:
		nameStyle = m.styles.ErrorText
	case taskIndex == m.selected:
		nameStyle = lipgloss.NewStyle().Foreground(m.styles.Primary).Bold(true)
	}

	statusText := m.taskStatusText(task)

	firstLine := lipgloss.JoinHorizontal(lipgloss.Left,
		icon, " ",
		nameStyle.Render(name), " ",
		m.styles.MutedText.Render(statusText),
	)

	bar, exists := m.progressBars[task.Key]
	if !exists {
		return firstLine
	}

	barWidth := defaultProgressBarWidth
	if m.width > maxProgressWidth {
		barWidth = m.width - progressBarPadding
	}

	bar.Width = barWidth
	m.progressBars[task.Key] = bar

	percent := float64(task.Percent) / 100
	if task.State == domain.StateInstalled || task.State == domain.StateSkipped {
		percent = 1.0
	}

	progressLine := "  " + bar.ViewAs(percent)

	return lipgloss.JoinVertical(lipgloss.Left,
		firstLine,
		m.styles.MutedText.Render(progressLine),
	)
}

func (m *Install) taskStatusText(task Task) string {
	switch task.State {
	case domain.StateInstalled:
		return "100%"
	case domain.StateSkipped:
		return "Skipped"
	case domain.StateFailed:
		return "Failed"
	case domain.StateDownloading, domain.StateInstalling:
		if task.Label != "" {
			return task.Label
		}

		return m.spinner.View()
	case domain.StateNotDownloaded, domain.StateDownloaded:
	}

	return "Pending"
}

func (m *Install) renderErrorDialog() string {
	taskIndex, ok := m.index[m.dialogKey]
	if !ok {
		return ""
	}

	task := m.tasks[taskIndex]
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ErrorText.Render(task.Name+" failed"),
		"",
		task.Error,
		"",
		m.styles.Keybinding("r", "retry download")+"  "+m.styles.Keybinding("esc", "dismiss"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(m.styles.Error).
		Padding(1, 2).
		Render(content)
}

func (m *Install) renderLogs() string {
	if len(m.logs) == 0 {
		return ""
	}

	content := strings.Join(m.logs, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Muted).
		Padding(0, 1).
		Width(m.availableWidth()).
		Render(m.styles.Title.Render("Recent Activity") + "\n" + content)
}

func (m *Install) renderFooter() string {
	keybindings := []string{
		m.styles.Keybinding("↑/↓", "select"),
		m.styles.Keybinding("r", "retry failed"),
		m.styles.Keybinding("l", "logs"),
		m.styles.Keybinding("q", "quit"),
	}

	return m.styles.Footer.Render(strings.Join(keybindings, "  "))
}

func (m *Install) availableWidth() int {
	width := m.width - 4
	if width < 40 {
		width = 40
	}

	return width
}

// Tasks exposes the task list for tests.
func (m *Install) Tasks() []Task {
	return m.tasks
}
