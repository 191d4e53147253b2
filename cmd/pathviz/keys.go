package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start   key.Binding
	Pause   key.Binding
	Step    key.Binding
	Abort   key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Instant key.Binding
	NextAlg key.Binding
	PrevAlg key.Binding
	Regen   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter", "run"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pause/resume"),
	),
	Step: key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("n/→", "step"),
	),
	Abort: key.NewBinding(
		key.WithKeys("x", "esc"),
		key.WithHelp("x", "abort"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "slower"),
	),
	Instant: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "instant"),
	),
	NextAlg: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next algorithm"),
	),
	PrevAlg: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev algorithm"),
	),
	Regen: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "new graph"),
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

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Step, k.Abort, k.NextAlg, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Step, k.Abort},
		{k.Faster, k.Slower, k.Instant},
		{k.NextAlg, k.PrevAlg, k.Regen},
		{k.Help, k.Quit},
	}
}
