package component

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

// BuildInfo is shown on the help page.
type BuildInfo struct {
	Version    string
	Date       string
	Commit     string
	ConfigPath string
	Endpoint   string
}

func NewHelpModel(info BuildInfo) HelpModel {
	return HelpModel{info: info, helpView: help.New()}
}

type HelpModel struct {
	helpView help.Model
	info     BuildInfo
	width    int
}

func (m HelpModel) Init() tea.Cmd {
	return nil
}

func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.helpView.Width = msg.Width
	}

	return m, nil
}

func (m HelpModel) View() string {
	keys := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Up,
			input.Default.Down,
			input.Default.PageUp,
			input.Default.PageDown,
			input.Default.HalfUp,
			input.Default.HalfDown,
			input.Default.Top,
			input.Default.Bottom,
		},
		{
			input.Default.Jump,
			input.Default.NextSection,
			input.Default.PrevSection,
			input.Default.Menu,
			input.Default.Compose,
			input.Default.Help,
			input.Default.Quit,
		},
		{
			input.Default.NextField,
			input.Default.PrevField,
			input.Default.Submit,
			input.Default.Back,
		},
	})

	info := lipgloss.JoinVertical(lipgloss.Left,
		styles.DetailRow("Version", m.info.Version),
		styles.DetailRow("Commit", m.info.Commit),
		styles.DetailRow("Built", m.info.Date),
		styles.DetailRow("Config", m.info.ConfigPath),
		styles.DetailRow("Contact API", m.info.Endpoint),
	)

	title := styles.WrapX(max(0, m.width-8), " Keys ", "─")

	return styles.HelpBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", keys, "", info))
}
