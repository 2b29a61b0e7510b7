package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

// NarrowWidth is the width below which the nav links collapse into the menu overlay.
const NarrowWidth = 72

const menuZone = "menu"

func NewNavBarModel() NavBarModel {
	return NavBarModel{id: zone.NewPrefix(), brand: "folio", state: nav.New(nav.DefaultThreshold)}
}

// NavBarModel renders the brand, the section links and the menu overlay. It owns no state of its
// own beyond what it is told through nav.State.
type NavBarModel struct {
	id    string
	brand string
	width int
	state nav.State
}

func (m NavBarModel) Init() tea.Cmd {
	return nil
}

func (m NavBarModel) Update(msg tea.Msg) (NavBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.State:
		m.state = msg
	case content.Document:
		if msg.Name != "" {
			m.brand = msg.Name
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if zone.Get(m.id + menuZone).InBounds(msg) {
			return m, command.ToggleMenu()
		}

		for _, section := range nav.Sections {
			if zone.Get(m.id + string(section)).InBounds(msg) {
				return m, command.Navigate(section)
			}
		}
	}

	return m, nil
}

// Narrow reports whether the links are collapsed into the menu.
func (m NavBarModel) Narrow() bool {
	return m.width < NarrowWidth
}

func (m NavBarModel) View() string {
	brand := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.BrandBracket.Render("<"),
		styles.BrandText.Render(truncate.StringWithTail(m.brand, 24, "…")),
		styles.BrandBracket.Render("/>"),
		" ")

	if m.Narrow() {
		label := "☰ Menu"
		if m.state.MenuOpen {
			label = "✕ Close"
		}
		toggle := zone.Mark(m.id+menuZone, styles.MenuToggle.Render(label))
		gap := max(0, m.width-lipgloss.Width(brand)-lipgloss.Width(toggle))

		return styles.HeaderContainerStyle.Width(m.width).Render(
			lipgloss.JoinHorizontal(lipgloss.Top, brand, lipgloss.NewStyle().Width(gap).Render(""), toggle))
	}

	links := make([]string, 0, len(nav.Sections)+1)
	links = append(links, brand)
	for _, section := range nav.Sections {
		links = append(links, zone.Mark(m.id+string(section), m.link(section)))
	}

	return styles.HeaderContainerStyle.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, links...))
}

// Menu renders the overlay listing every section. Empty when the menu is closed.
func (m NavBarModel) Menu() string {
	if !m.state.MenuOpen {
		return ""
	}

	rows := make([]string, 0, len(nav.Sections)+1)
	for idx, section := range nav.Sections {
		label := fmt.Sprintf("%d %s", idx+1, section.Title())
		style := styles.NavInactive
		if section == m.state.Active {
			style = styles.NavActive
		}
		rows = append(rows, zone.Mark(m.id+string(section), style.Render(label)))
	}
	rows = append(rows, styles.HelpStyle.Render(fmt.Sprintf("%s %s", input.Default.Back.Help().Key, input.Default.Back.Help().Desc)))

	return styles.MenuOverlay.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m NavBarModel) link(section nav.Section) string {
	label := fmt.Sprintf("%d %s", section.Index()+1, section.Title())
	if section == m.state.Active {
		return styles.NavActive.Render(label)
	}

	return styles.NavInactive.Render(label)
}
