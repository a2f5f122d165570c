package components

// dragTracker splits a press/motion/release sequence from the mouse into
// vertical drag steps and taps. Any motion between press and release turns
// the gesture into a drag.
type dragTracker struct {
	pressed bool
	moved   bool
	x, y    int
	lastY   int
}

func (d *dragTracker) press(x, y int) {
	*d = dragTracker{pressed: true, x: x, y: y, lastY: y}
}

// motion returns the rows moved since the last event. ok is false when no
// gesture is in progress.
func (d *dragTracker) motion(x, y int) (rows int, ok bool) {
	if !d.pressed {
		return 0, false
	}
	if x != d.x || y != d.lastY {
		d.moved = true
	}
	rows = y - d.lastY
	d.lastY = y
	return rows, true
}

// release ends the gesture. tap is true when the pointer never moved; x and
// y are the press position.
func (d *dragTracker) release() (tap bool, x, y int) {
	if !d.pressed {
		return false, 0, 0
	}
	tap, x, y = !d.moved, d.x, d.y
	*d = dragTracker{}
	return tap, x, y
}

func (d *dragTracker) active() bool {
	return d.pressed
}
