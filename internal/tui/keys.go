package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	toggle   key.Binding
	copy     key.Binding
	newItem  key.Binding
	delete   key.Binding
	search   key.Binding
	save     key.Binding
	protect  key.Binding
	moveUp   key.Binding
	moveDown key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
	copy:     key.NewBinding(key.WithKeys("c")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	search:   key.NewBinding(key.WithKeys("/")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	protect:  key.NewBinding(key.WithKeys("ctrl+p")),
	moveUp:   key.NewBinding(key.WithKeys("K", "shift+up")),
	moveDown: key.NewBinding(key.WithKeys("J", "shift+down")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
