package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the board bindings. The input bindings only apply while the
// title input has focus.
type keyMap struct {
	Focus       key.Binding
	Add         key.Binding
	Blur        key.Binding
	NextCat     key.Binding
	NextStatus  key.Binding
	Up          key.Binding
	Down        key.Binding
	CycleStatus key.Binding
	PrevStatus  key.Binding
	Delete      key.Binding
	FilterAll   key.Binding
	FilterHome  key.Binding
	FilterWork  key.Binding
	FilterStudy key.Binding
	CycleFilter key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("a", "i"),
			key.WithHelp("a", "new task"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		NextCat: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "category"),
		),
		NextStatus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "status"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next status"),
		),
		PrevStatus: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "prev status"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d", "delete"),
			key.WithHelp("x", "delete"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all"),
		),
		FilterHome: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "home"),
		),
		FilterWork: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "work"),
		),
		FilterStudy: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "study"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.CycleStatus, k.Delete, k.CycleFilter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.CycleStatus, k.PrevStatus, k.Delete},
		{k.FilterAll, k.FilterHome, k.FilterWork, k.FilterStudy, k.CycleFilter},
		{k.Focus, k.NextCat, k.NextStatus, k.Add, k.Blur},
		{k.Help, k.Quit},
	}
}

// inputHelp is the help shown while the title input has focus.
type inputHelp struct{ k keyMap }

func (h inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Add, h.k.NextCat, h.k.NextStatus, h.k.Blur}
}

func (h inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
