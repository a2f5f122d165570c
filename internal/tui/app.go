// Package tui provides the terminal user interface for swipesearch.
package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/swipesearch/internal/config"
	"github.com/hy4ri/swipesearch/internal/tui/components"
	"github.com/hy4ri/swipesearch/internal/tui/styles"
)

// notificationTitle is the title of search notifications.
const notificationTitle = "swipesearch"

// Services are the side effects the App reaches outside the terminal for.
type Services struct {
	Clipboard Clipboard
	Notifier  Notifier
}

// DefaultServices returns the OS clipboard and desktop notifier.
func DefaultServices() Services {
	return Services{
		Clipboard: SystemClipboard{},
		Notifier:  DesktopNotifier{},
	}
}

// App is the main Bubble Tea model for the application. It owns the text
// value and hands it to a single search field.
type App struct {
	// Dependencies
	config   *config.Config
	services Services

	// Data
	text      string
	lastQuery string

	// UI state
	statusMsg  string
	statusErr  bool
	width      int
	height     int
	showHelp   bool // footer
	helpScreen bool // full-screen key list
	quitting   bool

	// Components
	field    *components.SearchField
	helpComp *components.HelpModel
	keys     KeyMap
	help     help.Model

	// pending collects commands raised by field callbacks during Update.
	pending []tea.Cmd
}

// NewApp creates a new App showing query.
func NewApp(cfg *config.Config, query string, services Services) (*App, error) {
	opts, err := FieldOptions(cfg)
	if err != nil {
		return nil, err
	}

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSeparator
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.FullSeparator = styles.HelpSeparator

	a := &App{
		config:   cfg,
		services: services,
		text:     query,
		showHelp: cfg.UI.ShowHelp,
		keys:     DefaultKeyMap(),
		help:     h,
	}
	a.keys.setExpanded(false)
	a.helpComp = components.NewHelp(a.keys)

	opts.Actions = components.Actions{
		OnSearch: a.onSearch,
		OnCancel: a.onCancel,
	}
	a.field = components.NewSearchField(query, a.onValueChange, opts)
	a.text = a.field.Value()

	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.field.Init()
}

// Text returns the current text value.
func (a *App) Text() string { return a.text }

// LastQuery returns the most recently submitted query.
func (a *App) LastQuery() string { return a.lastQuery }

// Field returns the mounted search field.
func (a *App) Field() *components.SearchField { return a.field }

// onValueChange keeps the owned value and hands it straight back to the
// field, which renders from it.
func (a *App) onValueChange(text string) {
	a.text = text
	a.field.SetValue(text)
}

func (a *App) onSearch(text string) {
	a.lastQuery = text
	a.setStatus(fmt.Sprintf("Searching for %q", text), false)
	log.Printf("search submitted: %q", text)

	if !a.config.UI.NotifyOnSearch || a.services.Notifier == nil {
		return
	}
	notifier := a.services.Notifier
	a.pending = append(a.pending, func() tea.Msg {
		if err := notifier.Notify(notificationTitle, "Search: "+text); err != nil {
			log.Printf("failed to send notification: %v", err)
			return statusMsg{msg: "Notification failed: " + err.Error(), err: true}
		}
		return nil
	})
}

func (a *App) onCancel(string) {
	a.setStatus("", false)
}

func (a *App) setStatus(msg string, isErr bool) {
	a.statusMsg = msg
	a.statusErr = isErr
}

// quit disposes the field and ends the program.
func (a *App) quit() tea.Cmd {
	a.quitting = true
	a.field.Dispose()
	return tea.Quit
}
