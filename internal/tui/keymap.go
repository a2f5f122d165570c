package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains the host's key bindings. Keys typed while the field is
// expanded go to the field unless bound here.
type KeyMap struct {
	Focus     key.Binding
	Search    key.Binding
	Blur      key.Binding
	Paste     key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("/", "enter"),
			key.WithHelp("/", "search"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// setExpanded enables the bindings that apply to the field's phase so the
// help footer only lists what works right now.
func (k *KeyMap) setExpanded(expanded bool) {
	k.Focus.SetEnabled(!expanded)
	k.Help.SetEnabled(!expanded)
	k.Quit.SetEnabled(!expanded)
	k.Search.SetEnabled(expanded)
	k.Blur.SetEnabled(expanded)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Search, k.Blur, k.Paste, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Search, k.Blur},
		{k.Paste, k.Copy},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
