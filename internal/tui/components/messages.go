package components

import "time"

// FrameMsg advances the animations of the field with the matching ID.
// Frames for a disposed field, or another field, are ignored.
type FrameMsg struct {
	ID   int
	Time time.Time
}

// CloseHelpMsg asks the host to close the help screen.
type CloseHelpMsg struct{}
