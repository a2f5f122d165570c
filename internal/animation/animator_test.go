package animation

import (
	"math"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTween_SettlesAfterDuration(t *testing.T) {
	tw := NewTween(10, 400*time.Millisecond, EaseInOut)
	tw.AnimateTo(20, epoch)

	if !tw.Active() {
		t.Fatal("tween should be active after AnimateTo")
	}

	v, settled := tw.Advance(epoch.Add(200 * time.Millisecond))
	if settled {
		t.Error("tween settled halfway through")
	}
	if math.Abs(v-15) > 0.01 {
		t.Errorf("midpoint = %v, want ~15 for a symmetric curve", v)
	}

	v, settled = tw.Advance(epoch.Add(400 * time.Millisecond))
	if !settled || v != 20 {
		t.Errorf("Advance at end = (%v, %v), want (20, true)", v, settled)
	}
	if tw.Active() {
		t.Error("tween still active after settling")
	}
}

func TestTween_RetargetStartsFromCurrentValue(t *testing.T) {
	tw := NewTween(0, 400*time.Millisecond, Linear)
	tw.AnimateTo(100, epoch)
	tw.Advance(epoch.Add(100 * time.Millisecond)) // 25

	tw.AnimateTo(0, epoch.Add(200*time.Millisecond)) // interrupted at 50

	v, _ := tw.Advance(epoch.Add(200 * time.Millisecond))
	if math.Abs(v-50) > 1e-9 {
		t.Errorf("value at retarget = %v, want 50", v)
	}
	v, _ = tw.Advance(epoch.Add(400 * time.Millisecond))
	if math.Abs(v-25) > 1e-9 {
		t.Errorf("value halfway back = %v, want 25", v)
	}
	v, settled := tw.Advance(epoch.Add(600 * time.Millisecond))
	if !settled || v != 0 {
		t.Errorf("final = (%v, %v), want (0, true)", v, settled)
	}
}

func TestTween_SameTargetDoesNotRestart(t *testing.T) {
	tw := NewTween(0, 400*time.Millisecond, Linear)
	tw.AnimateTo(100, epoch)
	tw.AnimateTo(100, epoch.Add(300*time.Millisecond))

	v, settled := tw.Advance(epoch.Add(400 * time.Millisecond))
	if !settled || v != 100 {
		t.Errorf("got (%v, %v), want (100, true)", v, settled)
	}
}

func TestTween_ZeroDurationSnaps(t *testing.T) {
	tw := NewTween(1, 0, nil)
	tw.AnimateTo(5, epoch)
	if tw.Active() || tw.Value() != 5 {
		t.Errorf("zero-duration tween: active=%v value=%v", tw.Active(), tw.Value())
	}
}

func TestTween_AnimateToCurrentValueIsNoop(t *testing.T) {
	tw := NewTween(3, time.Second, Linear)
	tw.AnimateTo(3, epoch)
	if tw.Active() {
		t.Error("animating to the resting value should not start a tween")
	}
}

func TestSpring_Settles(t *testing.T) {
	s := NewSpring(0, 12, 1)
	s.AnimateTo(40, epoch)

	now := epoch
	settled := false
	for i := 0; i < 600 && !settled; i++ {
		now = now.Add(time.Second / 60)
		_, settled = s.Advance(now)
	}
	if !settled {
		t.Fatalf("spring did not settle, value=%v", s.Value())
	}
	if s.Value() != 40 || s.Active() {
		t.Errorf("settled spring: value=%v active=%v", s.Value(), s.Active())
	}
}

func TestSpring_MovesTowardTarget(t *testing.T) {
	s := NewSpring(0, 8, 1)
	s.AnimateTo(10, epoch)
	v, _ := s.Advance(epoch.Add(100 * time.Millisecond))
	if v <= 0 || v >= 10 {
		t.Errorf("spring after 100ms = %v, want strictly between 0 and 10", v)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	if !c.Now().Equal(epoch) {
		t.Fatalf("Now() = %v", c.Now())
	}
	if got := c.Advance(time.Second); !got.Equal(epoch.Add(time.Second)) {
		t.Errorf("Advance = %v", got)
	}
}

func TestAnimatorsSatisfyInterface(t *testing.T) {
	var _ Animator = NewTween(0, time.Second, Linear)
	var _ Animator = NewSpring(0, 6, 1)
}
