package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	refresh   key.Binding
	push      key.Binding
	copy      key.Binding
	buildInfo key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	refresh:   key.NewBinding(key.WithKeys("r")),
	push:      key.NewBinding(key.WithKeys("p")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
