package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/swipesearch/internal/tui/styles"
)

// HelpModel renders a full-screen list of key bindings.
type HelpModel struct {
	width, height int
	keymap        help.KeyMap
}

// NewHelp creates a new HelpModel.
func NewHelp(keymap help.KeyMap) *HelpModel {
	return &HelpModel{keymap: keymap}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	case tea.WindowSizeMsg:
		h.SetSize(msg.Width, msg.Height)
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	if h.keymap == nil {
		b.WriteString(styles.HelpDesc.Render("No keybindings registered"))
		return h.place(b.String())
	}

	keyStyle := styles.HelpKey.Width(10).Align(lipgloss.Right).PaddingRight(2)
	columnStyle := lipgloss.NewStyle().PaddingRight(4)
	var columns []string
	for _, group := range h.keymap.FullHelp() {
		var col strings.Builder
		for _, binding := range group {
			if !hasHelp(binding) {
				continue
			}
			col.WriteString(keyStyle.Render(binding.Help().Key))
			col.WriteString(styles.HelpDesc.Render(binding.Help().Desc))
			col.WriteString("\n")
		}
		columns = append(columns, columnStyle.Render(strings.TrimSuffix(col.String(), "\n")))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Press esc or ? to close"))

	return h.place(b.String())
}

func (h *HelpModel) place(s string) string {
	if h.width <= 0 || h.height <= 0 {
		return s
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, s)
}

func hasHelp(b key.Binding) bool {
	return b.Help().Key != ""
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}
