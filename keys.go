package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NewGame   key.Binding
	Hints     key.Binding
	Bigger    key.Binding
	Smaller   key.Binding
	Save      key.Binding
	Load      key.Binding
	Quit      key.Binding
	Confirm   key.Binding
	Backspace key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NewGame:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Hints:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hints")),
		Bigger:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "size")),
		Smaller:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("", "")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Load:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "load")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new game")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "erase")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewGame, k.Hints, k.Bigger, k.Save, k.Load, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NewGame, k.Hints, k.Bigger, k.Smaller, k.Save, k.Load, k.Backspace, k.Quit}}
}

type victoryKeyMap struct {
	keyMap
}

func (k victoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Quit}
}

func (k victoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Quit}}
}
