package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause       key.Binding
	Reset       key.Binding
	Cycle       key.Binding
	Increase    key.Binding
	Decrease    key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next param"),
		),
		Increase: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "decrease"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "cursor back"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "cursor fwd"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Reset, k.Cycle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Reset, k.Quit},
		{k.Cycle, k.Increase, k.Decrease},
		{k.CursorLeft, k.CursorRight, k.Help},
	}
}
