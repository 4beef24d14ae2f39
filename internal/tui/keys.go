package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start   key.Binding
	Focus   key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Less    key.Binding
	More    key.Binding
	Paste   key.Binding
	Back    key.Binding
	Next    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "start")),
		Focus:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "text/options")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle")),
		Less:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "fewer words")),
		More:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more words")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Next:    key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "next")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "again")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) setupTextHelp() []key.Binding {
	return []key.Binding{k.Start, k.Focus, k.Paste, k.Quit}
}

func (k keyMap) setupOptionsHelp() []key.Binding {
	return []key.Binding{k.Start, k.Focus, k.Up, k.Down, k.Toggle, k.Less, k.More, k.Quit}
}

func (k keyMap) typingHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

func (k keyMap) doneHelp(last bool) []key.Binding {
	next := k.Next
	if last {
		next = key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "summary"))
	}
	return []key.Binding{next, k.Back, k.Quit}
}

func (k keyMap) summaryHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Back, k.Quit}
}
