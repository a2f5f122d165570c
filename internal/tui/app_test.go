package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/golang/mock/gomock"

	"github.com/hy4ri/swipesearch/internal/config"
	"github.com/hy4ri/swipesearch/internal/tui/components"
	"github.com/hy4ri/swipesearch/internal/tui/state"
)

type testApp struct {
	*App
	clipboard *MockClipboard
	notifier  *MockNotifier
}

func newTestApp(t *testing.T, cfg *config.Config, query string) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	ta := &testApp{
		clipboard: NewMockClipboard(ctrl),
		notifier:  NewMockNotifier(ctrl),
	}
	app, err := NewApp(cfg, query, Services{Clipboard: ta.clipboard, Notifier: ta.notifier})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	ta.App = app
	app.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return ta
}

// send delivers msg and returns every message its command produces,
// expanding batches.
func (ta *testApp) send(msg tea.Msg) []tea.Msg {
	_, cmd := ta.Update(msg)
	return drain(cmd)
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func hasMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestApp_PrefilledQuery(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "cats")

	if ta.Text() != "cats" || ta.Field().Value() != "cats" {
		t.Errorf("expected query to seed the field, got %q / %q", ta.Text(), ta.Field().Value())
	}
}

func TestApp_TypingKeepsValueInSync(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "")

	ta.send(keyRunes("/"))
	if !ta.Field().Focused() {
		t.Fatal("expected / to expand the field")
	}
	ta.send(keyRunes("go"))

	if ta.Text() != "go" {
		t.Errorf("host text = %q, want %q", ta.Text(), "go")
	}
	if ta.Field().Value() != "go" || ta.Field().State().Text != "go" {
		t.Errorf("field out of sync: %q / %q", ta.Field().Value(), ta.Field().State().Text)
	}
}

func TestApp_EnterFocuses(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "")

	ta.send(tea.KeyMsg{Type: tea.KeyEnter})

	if !ta.Field().Focused() {
		t.Error("expected enter to expand the field")
	}
}

func TestApp_EscCollapses(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "")
	ta.send(keyRunes("/"))

	ta.send(tea.KeyMsg{Type: tea.KeyEsc})

	if ta.Field().Focused() {
		t.Error("expected esc to collapse the field")
	}
}

func TestApp_SubmitNotifies(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.NotifyOnSearch = true
	ta := newTestApp(t, cfg, "")
	ta.notifier.EXPECT().Notify("swipesearch", "Search: go").Return(nil)

	ta.send(keyRunes("/"))
	ta.send(keyRunes("go"))
	ta.send(tea.KeyMsg{Type: tea.KeyEnter})

	if ta.LastQuery() != "go" {
		t.Errorf("last query = %q, want %q", ta.LastQuery(), "go")
	}
	if !ta.Field().Focused() {
		t.Error("expected submit to keep the field open")
	}
}

func TestApp_SubmitWithoutNotification(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "go")
	ta.send(keyRunes("/"))

	// The mock fails the test if Notify is called.
	ta.send(tea.KeyMsg{Type: tea.KeyEnter})

	if ta.LastQuery() != "go" {
		t.Errorf("last query = %q, want %q", ta.LastQuery(), "go")
	}
}

func TestApp_NotificationFailureShowsStatus(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.NotifyOnSearch = true
	ta := newTestApp(t, cfg, "go")
	ta.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("no dbus"))
	ta.send(keyRunes("/"))

	msgs := ta.send(tea.KeyMsg{Type: tea.KeyEnter})
	status, ok := hasMsg[statusMsg](msgs)
	if !ok || !status.err {
		t.Fatalf("expected an error status, got %v", msgs)
	}
	ta.send(status)

	if !strings.Contains(ansi.Strip(ta.View()), "no dbus") {
		t.Error("expected the failure in the status bar")
	}
}

func TestApp_PasteIsExternalPopulation(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "")
	ta.clipboard.EXPECT().ReadAll().Return("kittens", nil)

	msgs := ta.send(tea.KeyMsg{Type: tea.KeyCtrlV})
	pasted, ok := hasMsg[clipboardMsg](msgs)
	if !ok {
		t.Fatalf("expected clipboard text, got %v", msgs)
	}
	ta.send(pasted)

	if ta.Text() != "kittens" {
		t.Errorf("text = %q, want %q", ta.Text(), "kittens")
	}
	if !ta.Field().State().AllSelected() {
		t.Errorf("expected pasted text to be selected while collapsed, got %+v", ta.Field().State())
	}
}

func TestApp_PasteWhileExpandedPlacesCaret(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "")
	ta.clipboard.EXPECT().ReadAll().Return("kittens", nil)
	ta.send(keyRunes("/"))

	for _, m := range ta.send(tea.KeyMsg{Type: tea.KeyCtrlV}) {
		ta.send(m)
	}

	s := ta.Field().State()
	if s.Text != "kittens" || !s.Selection.Collapsed() || s.Selection.End != 7 {
		t.Errorf("expected caret after pasted text, got %+v", s)
	}
}

func TestApp_PasteRespectsCharLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Field.CharLimit = 3
	ta := newTestApp(t, cfg, "")
	ta.clipboard.EXPECT().ReadAll().Return("kittens", nil)
	ta.send(keyRunes("/"))

	for _, m := range ta.send(tea.KeyMsg{Type: tea.KeyCtrlV}) {
		ta.send(m)
	}
	ta.send(tea.KeyMsg{Type: tea.KeyLeft})

	if ta.Text() != "kit" || ta.Field().State().Text != "kit" {
		t.Errorf("expected host and field to hold %q, got %q / %q", "kit", ta.Text(), ta.Field().State().Text)
	}
	if s := ta.Field().State(); s.Selection != (state.Selection{Start: 2, End: 2}) {
		t.Errorf("expected caret at 2, got %+v", s.Selection)
	}
}

func TestApp_PasteFailure(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "keep")
	ta.clipboard.EXPECT().ReadAll().Return("", errors.New("no clipboard"))

	msgs := ta.send(tea.KeyMsg{Type: tea.KeyCtrlV})
	if status, ok := hasMsg[statusMsg](msgs); !ok || !status.err {
		t.Errorf("expected an error status, got %v", msgs)
	}
	if ta.Text() != "keep" {
		t.Errorf("expected text untouched, got %q", ta.Text())
	}
}

func TestApp_Copy(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "abc")
	ta.clipboard.EXPECT().WriteAll("abc").Return(nil)

	msgs := ta.send(tea.KeyMsg{Type: tea.KeyCtrlY})

	if status, ok := hasMsg[statusMsg](msgs); !ok || status.err {
		t.Errorf("expected a success status, got %v", msgs)
	}
}

func TestApp_Quit(t *testing.T) {
	tests := []struct {
		name     string
		expand   bool
		key      tea.KeyMsg
		wantQuit bool
	}{
		{name: "q while collapsed", key: keyRunes("q"), wantQuit: true},
		{name: "q while expanded types", expand: true, key: keyRunes("q")},
		{name: "ctrl+c while collapsed", key: tea.KeyMsg{Type: tea.KeyCtrlC}, wantQuit: true},
		{name: "ctrl+c while expanded", expand: true, key: tea.KeyMsg{Type: tea.KeyCtrlC}, wantQuit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, config.DefaultConfig(), "")
			if tt.expand {
				ta.send(keyRunes("/"))
			}

			_, cmd := ta.Update(tt.key)
			var quit bool
			if cmd != nil {
				_, quit = cmd().(tea.QuitMsg)
			}

			if quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", quit, tt.wantQuit)
			}
			if ta.Field().Disposed() != tt.wantQuit {
				t.Errorf("field disposed = %v, want %v", ta.Field().Disposed(), tt.wantQuit)
			}
			if !tt.wantQuit && ta.Text() != "q" {
				t.Errorf("expected q to be typed, got %q", ta.Text())
			}
		})
	}
}

func TestApp_IgnoresMessagesAfterQuit(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "")
	ta.send(tea.KeyMsg{Type: tea.KeyCtrlC})

	if msgs := ta.send(components.FrameMsg{ID: ta.Field().ID()}); len(msgs) != 0 {
		t.Errorf("expected nothing after quit, got %v", msgs)
	}
	if ta.View() != "" {
		t.Error("expected an empty view after quit")
	}
}

func TestApp_ViewLayout(t *testing.T) {
	tests := []struct {
		name     string
		showHelp bool
	}{
		{name: "with help", showHelp: true},
		{name: "without help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.UI.ShowHelp = tt.showHelp
			ta := newTestApp(t, cfg, "")

			view := ansi.Strip(ta.View())
			lines := strings.Split(view, "\n")
			if len(lines) != 20 {
				t.Fatalf("expected 20 rows, got %d:\n%s", len(lines), view)
			}
			if !strings.Contains(view, "Search") {
				t.Error("expected the placeholder")
			}
			if got := strings.Contains(lines[len(lines)-1], "quit"); got != tt.showHelp {
				t.Errorf("help footer shown = %v, want %v", got, tt.showHelp)
			}
		})
	}
}

func TestApp_HelpScreen(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "")

	ta.send(keyRunes("?"))
	view := ansi.Strip(ta.View())
	if !strings.Contains(view, "Keyboard Shortcuts") || !strings.Contains(view, "ctrl+y") {
		t.Fatalf("expected the help screen:\n%s", view)
	}

	// q closes the help screen instead of quitting.
	for _, m := range ta.send(keyRunes("q")) {
		ta.send(m)
	}
	if ta.Field().Disposed() {
		t.Fatal("expected q to close help, not quit")
	}
	if strings.Contains(ansi.Strip(ta.View()), "Keyboard Shortcuts") {
		t.Error("expected the help screen to close")
	}
}

func TestApp_StatusShowsLastQuery(t *testing.T) {
	ta := newTestApp(t, config.DefaultConfig(), "otters")
	ta.send(keyRunes("/"))
	ta.send(tea.KeyMsg{Type: tea.KeyEnter})
	ta.send(tea.KeyMsg{Type: tea.KeyEsc})

	if !strings.Contains(ansi.Strip(ta.View()), "last query: otters") {
		t.Errorf("expected last query in status bar:\n%s", ansi.Strip(ta.View()))
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Field.Colors.Container = "grey"

	if _, err := NewApp(cfg, "", Services{}); err == nil {
		t.Error("expected an error for a bad colour")
	}
}
