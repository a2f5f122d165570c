package tui

import (
	"github.com/atotto/clipboard"
	"github.com/gen2brain/beeep"
)

//go:generate mockgen -source=services.go -destination=mock_services_test.go -package=tui

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Notifier shows desktop notifications.
type Notifier interface {
	Notify(title, message string) error
}

// SystemClipboard is the Clipboard backed by the OS.
type SystemClipboard struct{}

// ReadAll implements Clipboard.
func (SystemClipboard) ReadAll() (string, error) { return clipboard.ReadAll() }

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// DesktopNotifier sends notifications through beeep. When the desktop
// refuses a notification it falls back to a terminal beep.
type DesktopNotifier struct{}

// Notify implements Notifier.
func (DesktopNotifier) Notify(title, message string) error {
	err := beeep.Notify(title, message, "")
	if err == nil {
		return nil
	}
	if beepErr := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); beepErr == nil {
		return nil
	}
	return err
}
