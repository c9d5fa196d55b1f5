package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every key binding of the carousel
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Infinite key.Binding
	Contain  key.Binding
	Axis     key.Binding
	More     key.Binding
	Fewer    key.Binding
	Instant  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "down", "j", " "),
			key.WithHelp("→/l", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "up", "k"),
			key.WithHelp("←/h", "prev"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Infinite: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle infinite"),
		),
		Contain: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle contain"),
		),
		Axis: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "switch axis"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "show more"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "show fewer"),
		),
		Instant: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle animation"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Infinite, k.Contain, k.Axis, k.Instant},
		{k.More, k.Fewer, k.Help, k.Quit},
	}
}
