package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/swipesearch/internal/tui/styles"
	"github.com/hy4ri/swipesearch/internal/tui/ui"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.width == 0 {
		return "Loading..."
	}
	if a.helpScreen {
		return a.helpComp.View()
	}

	var b strings.Builder
	b.WriteString(a.field.View())
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	if a.showHelp {
		b.WriteString("\n")
		b.WriteString(a.help.View(a.keys))
	}
	return b.String()
}

// chromeHeight is the number of rows below the field.
func (a *App) chromeHeight() int {
	if a.showHelp {
		return 2
	}
	return 1
}

func (a *App) fieldHeight() int {
	h := a.height - a.chromeHeight()
	if h < 1 {
		return 1
	}
	return h
}

func (a *App) renderStatusBar() string {
	inner := a.width - styles.StatusBar.GetHorizontalPadding()

	var content string
	switch {
	case a.statusMsg != "" && a.statusErr:
		content = styles.StatusBarError.Render(ui.TruncateString(a.statusMsg, inner))
	case a.statusMsg != "":
		content = styles.StatusBarSuccess.Render(ui.TruncateString(a.statusMsg, inner))
	case a.lastQuery != "":
		label := "last query: "
		content = styles.StatusBarText.Render(label) +
			styles.StatusBarKey.Render(ui.TruncateString(a.lastQuery, inner-lipgloss.Width(label)))
	default:
		content = styles.StatusBarText.Render(a.field.State().Phase().String())
	}

	return styles.StatusBar.Width(a.width).MaxWidth(a.width).Render(content)
}
