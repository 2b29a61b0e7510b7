package component

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

// ProgressModel draws the scroll completion bar across the top of the screen.
type ProgressModel struct {
	bar     progress.Model
	percent float64
}

func NewProgressModel() ProgressModel {
	bar := progress.New(
		progress.WithGradient(string(styles.Accent), string(styles.ProgressEnd)),
		progress.WithoutPercentage(),
		progress.WithFillCharacters('━', ' '),
	)

	return ProgressModel{bar: bar}
}

func (m ProgressModel) Init() tea.Cmd {
	return nil
}

func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width
	case nav.State:
		m.percent = msg.Progress
	}

	return m, nil
}

func (m ProgressModel) View() string {
	return m.bar.ViewAs(m.percent / 100)
}
