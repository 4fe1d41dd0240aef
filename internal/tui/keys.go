package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	newItem     key.Binding
	delete      key.Binding
	copy        key.Binding
	reveal      key.Binding
	counterUp   key.Binding
	counterDown key.Binding
	cycleType   key.Binding
	info        key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q")),
	newItem:     key.NewBinding(key.WithKeys("n")),
	delete:      key.NewBinding(key.WithKeys("d")),
	copy:        key.NewBinding(key.WithKeys("c")),
	reveal:      key.NewBinding(key.WithKeys("v")),
	counterUp:   key.NewBinding(key.WithKeys("+", "=")),
	counterDown: key.NewBinding(key.WithKeys("-", "_")),
	cycleType:   key.NewBinding(key.WithKeys("t")),
	info:        key.NewBinding(key.WithKeys("i")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
}
