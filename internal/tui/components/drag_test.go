package components

import "testing"

func TestDragTracker_Tap(t *testing.T) {
	var d dragTracker
	d.press(3, 4)

	tap, x, y := d.release()
	if !tap || x != 3 || y != 4 {
		t.Errorf("release() = (%v, %d, %d), want (true, 3, 4)", tap, x, y)
	}
	if d.active() {
		t.Error("expected gesture to end on release")
	}
}

func TestDragTracker_Motion(t *testing.T) {
	var d dragTracker
	d.press(0, 5)

	steps := []struct {
		y    int
		want int
	}{
		{y: 6, want: 1},
		{y: 8, want: 2},
		{y: 8, want: 0},
		{y: 4, want: -4},
	}
	for _, s := range steps {
		rows, ok := d.motion(0, s.y)
		if !ok || rows != s.want {
			t.Errorf("motion to %d = (%d, %v), want (%d, true)", s.y, rows, ok, s.want)
		}
	}

	if tap, _, _ := d.release(); tap {
		t.Error("expected a drag, not a tap")
	}
}

func TestDragTracker_HorizontalMotionIsNotATap(t *testing.T) {
	var d dragTracker
	d.press(0, 0)
	d.motion(2, 0)

	if tap, _, _ := d.release(); tap {
		t.Error("expected sideways motion to cancel the tap")
	}
}

func TestDragTracker_MotionWithoutPress(t *testing.T) {
	var d dragTracker
	if _, ok := d.motion(1, 1); ok {
		t.Error("expected motion without a press to be ignored")
	}
	if tap, _, _ := d.release(); tap {
		t.Error("expected release without a press to be ignored")
	}
}
