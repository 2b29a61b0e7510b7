package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit        key.Binding
	Help        key.Binding
	Menu        key.Binding
	Back        key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	HalfUp      key.Binding
	HalfDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Jump        key.Binding
	Compose     key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Submit      key.Binding
}

// TODO make configurable.
var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Menu"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup", "Page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", " "),
		key.WithHelp("pgdn", "Page down"),
	),
	HalfUp: key.NewBinding(
		key.WithKeys("u", "ctrl+u"),
		key.WithHelp("u", "½ page up"),
	),
	HalfDown: key.NewBinding(
		key.WithKeys("d", "ctrl+d"),
		key.WithHelp("d", "½ page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "Top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "Bottom"),
	),
	NextSection: key.NewBinding(
		key.WithKeys("tab", "]"),
		key.WithHelp("tab", "Next section"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("shift+tab", "["),
		key.WithHelp("shift tab", "Prev section"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-6", "Jump to section"),
	),
	Compose: key.NewBinding(
		key.WithKeys("c", "enter"),
		key.WithHelp("c", "Write message"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "Send message"),
	),
}

// JumpIndex converts a jump key into a zero based index.
func JumpIndex(pressed string) (int, bool) {
	if len(pressed) != 1 || pressed[0] < '1' || pressed[0] > '9' {
		return 0, false
	}

	return int(pressed[0] - '1'), true
}
