// Package components provides the bubbletea components of swipesearch.
package components

import tea "github.com/charmbracelet/bubbletea"

// Component is a sub-model that owns a rectangle of the screen. It handles
// its own messages and renders itself.
type Component interface {
	// Init returns the component's initial command, if any.
	Init() tea.Cmd

	// Update handles a message and returns the component and a command.
	Update(msg tea.Msg) (Component, tea.Cmd)

	// View renders the component into its rectangle.
	View() string

	// SetSize sets the rectangle the component may draw into.
	SetSize(width, height int)
}

// Focusable is implemented by components that take keyboard focus. Focus
// changes may start animations, so both directions return a command.
type Focusable interface {
	Component
	Focus() tea.Cmd
	Blur() tea.Cmd
	Focused() bool
}

// Controlled is implemented by components whose value is owned by the
// caller. SetValue is the source of truth for what gets rendered.
type Controlled interface {
	Value() string
	SetValue(v string)
}

// Disposable is implemented by components holding frame loops or
// subscriptions that must end when the component is unmounted.
type Disposable interface {
	Dispose()
}
