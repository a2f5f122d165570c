// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for keys and the last query
	Highlight = lipgloss.AdaptiveColor{Light: "#007AFF", Dark: "#0A84FF"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}

	statusBackground = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}
)

// Pill holds the styles of one search field. They are built per field
// because the colours come from its options.
type Pill struct {
	// Frame draws the rounded outline.
	Frame lipgloss.Style
	// Fill is the inside of the pill.
	Fill lipgloss.Style
	// Text is live text; Bold is applied once the font has grown.
	Text lipgloss.Style
	// Placeholder is the label shown instead of text.
	Placeholder lipgloss.Style
	// Caret is the cell under the caret.
	Caret lipgloss.Style
	// Selection is selected text.
	Selection lipgloss.Style
}

// NewPill builds the pill styles from the field's colours. container fills
// the pill and content colours everything drawn on it.
func NewPill(container, content lipgloss.TerminalColor) Pill {
	fill := lipgloss.NewStyle()
	if container != nil {
		fill = fill.Background(container)
	}
	if content != nil {
		fill = fill.Foreground(content)
	}

	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if container != nil {
		frame = frame.BorderForeground(container)
	}

	selection := lipgloss.NewStyle().Reverse(true)
	if container != nil && content != nil {
		selection = lipgloss.NewStyle().Background(content).Foreground(container)
	}

	return Pill{
		Frame:       frame,
		Fill:        fill,
		Text:        fill,
		Placeholder: fill,
		Caret:       fill.Reverse(true),
		Selection:   selection,
	}
}

// Title is used for screen headings
var Title = lipgloss.NewStyle().
	Bold(true).
	Foreground(Highlight)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(statusBackground).
			Padding(0, 1)

	// StatusBarKey labels values in the status bar
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(statusBackground)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(statusBackground)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(statusBackground).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(statusBackground).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator sits between help entries
	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle)
)
