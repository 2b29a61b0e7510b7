package component

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

type StatusBarModel struct {
	width       int
	state       nav.State
	statusMsg   string
	statusError bool
	version     string
	lastSent    time.Time
	now         func() time.Time
}

func NewStatusBarModel(version string) StatusBarModel {
	return StatusBarModel{version: version, now: time.Now}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case nav.State:
		m.state = msg
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearErrorAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case command.LastSentMsg:
		m.lastSent = msg.At
	}

	return m, nil
}

func (m StatusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusSection.Render(fmt.Sprintf("%s %3.0f%%", m.state.Active.Title(), m.state.Progress)),
		styles.StatusHelp.Render(helpHint(input.Default.Help)),
		styles.StatusHelp.Render(helpHint(input.Default.Quit)),
	}

	if status := m.status(); status != "" {
		args = append(args, status)
	}

	if !m.lastSent.IsZero() {
		args = append(args, styles.StatusHistory.Render("last sent "+humanize.RelTime(m.lastSent, m.now(), "ago", "from now")))
	}

	return lipgloss.NewStyle().Width(m.width).MaxHeight(1).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m StatusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}

func helpHint(binding key.Binding) string {
	return fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc)
}
