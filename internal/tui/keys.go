package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	nextCat   key.Binding
	prevCat   key.Binding
	authors   key.Binding
	refresh   key.Binding
	copy      key.Binding
	buildInfo key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	nextCat:   key.NewBinding(key.WithKeys("tab", "right", "l")),
	prevCat:   key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	authors:   key.NewBinding(key.WithKeys("a")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("i")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
