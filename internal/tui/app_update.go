package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/swipesearch/internal/tui/components"
)

// statusMsg sets the status line.
type statusMsg struct {
	msg string
	err bool
}

// clipboardMsg carries text read from the clipboard.
type clipboardMsg struct {
	text string
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.quitting {
		return a, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.helpComp.SetSize(msg.Width, msg.Height)
		a.field.SetSize(msg.Width, a.fieldHeight())

	case statusMsg:
		a.setStatus(msg.msg, msg.err)

	case components.CloseHelpMsg:
		a.helpScreen = false

	case tea.MouseMsg:
		if !a.helpScreen {
			cmd = a.forward(msg)
		}

	case clipboardMsg:
		// Pasted text replaces the value as if the host had set it. The
		// field may cut it to its character limit.
		a.field.SetValue(msg.text)
		a.text = a.field.Value()

	default:
		cmd = a.forward(msg)
	}

	a.keys.setExpanded(a.field.Focused())
	return a, a.flush(cmd)
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a.quit()
	}
	if a.helpScreen {
		_, cmd := a.helpComp.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, a.keys.Paste):
		return a.pasteCmd()
	case key.Matches(msg, a.keys.Copy):
		return a.copyCmd()
	}

	if a.field.Focused() {
		return a.forward(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Focus):
		return a.field.Focus()
	case key.Matches(msg, a.keys.Help):
		a.helpScreen = true
		return nil
	}
	return nil
}

// forward hands msg to the field.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	_, cmd := a.field.Update(msg)
	return cmd
}

// flush batches cmd with anything the field callbacks queued.
func (a *App) flush(cmd tea.Cmd) tea.Cmd {
	if len(a.pending) == 0 {
		return cmd
	}
	cmds := append(a.pending, cmd)
	a.pending = nil
	return tea.Batch(cmds...)
}

func (a *App) pasteCmd() tea.Cmd {
	cb := a.services.Clipboard
	if cb == nil {
		return nil
	}
	return func() tea.Msg {
		text, err := cb.ReadAll()
		if err != nil {
			log.Printf("failed to read clipboard: %v", err)
			return statusMsg{msg: "Failed to paste: " + err.Error(), err: true}
		}
		return clipboardMsg{text: text}
	}
}

func (a *App) copyCmd() tea.Cmd {
	cb := a.services.Clipboard
	if cb == nil {
		return nil
	}
	text := a.text
	return func() tea.Msg {
		if err := cb.WriteAll(text); err != nil {
			log.Printf("failed to write clipboard: %v", err)
			return statusMsg{msg: "Failed to copy: " + err.Error(), err: true}
		}
		return statusMsg{msg: "Copied to clipboard"}
	}
}
