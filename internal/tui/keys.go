// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	buildInfo key.Binding
	signup    key.Binding

	home    key.Binding
	tracker key.Binding
	reports key.Binding
	profile key.Binding
	logout  key.Binding

	estimate  key.Binding
	delete    key.Binding
	switchTab key.Binding
	copy      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	signup:    key.NewBinding(key.WithKeys("ctrl+n")),

	home:    key.NewBinding(key.WithKeys("f2")),
	tracker: key.NewBinding(key.WithKeys("f3")),
	reports: key.NewBinding(key.WithKeys("f4")),
	profile: key.NewBinding(key.WithKeys("f5")),
	logout:  key.NewBinding(key.WithKeys("f10")),

	estimate:  key.NewBinding(key.WithKeys("ctrl+e")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	switchTab: key.NewBinding(key.WithKeys("tab")),
	copy:      key.NewBinding(key.WithKeys("c")),
}
