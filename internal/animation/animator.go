package animation

import "time"

// Animator drives a single float property toward a target.
type Animator interface {
	// Value is the value as of the last AnimateTo, Advance or Jump.
	Value() float64
	// Target is where the animator is heading.
	Target() float64
	// AnimateTo starts moving toward target from the value at now.
	// An in-flight animation is interrupted, not queued.
	AnimateTo(target float64, now time.Time)
	// Advance samples the animation at now. settled reports whether the
	// value has reached its target and no further frames are needed.
	Advance(now time.Time) (value float64, settled bool)
	// Jump stops any animation and sets value and target to v.
	Jump(v float64)
	// Active reports whether frames are still needed.
	Active() bool
}

// Tween is a fixed-duration Animator shaped by a Curve.
type Tween struct {
	Duration time.Duration
	Curve    Curve

	from, to, value float64
	start           time.Time
	active          bool
}

// NewTween returns a settled tween resting at initial.
func NewTween(initial float64, duration time.Duration, curve Curve) *Tween {
	return &Tween{
		Duration: duration,
		Curve:    curve,
		from:     initial,
		to:       initial,
		value:    initial,
	}
}

// Value implements Animator.
func (tw *Tween) Value() float64 { return tw.value }

// Target implements Animator.
func (tw *Tween) Target() float64 { return tw.to }

// Active implements Animator.
func (tw *Tween) Active() bool { return tw.active }

// AnimateTo implements Animator.
func (tw *Tween) AnimateTo(target float64, now time.Time) {
	if tw.active {
		if target == tw.to {
			return
		}
		tw.Advance(now)
	}
	if target == tw.value {
		tw.Jump(target)
		return
	}
	if tw.Duration <= 0 {
		tw.Jump(target)
		return
	}
	tw.from = tw.value
	tw.to = target
	tw.start = now
	tw.active = true
}

// Advance implements Animator.
func (tw *Tween) Advance(now time.Time) (float64, bool) {
	if !tw.active {
		return tw.value, true
	}
	elapsed := now.Sub(tw.start)
	if elapsed >= tw.Duration {
		tw.value = tw.to
		tw.active = false
		return tw.value, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	curve := tw.Curve
	if curve == nil {
		curve = Linear
	}
	tw.value = Lerp(tw.from, tw.to, curve(float64(elapsed)/float64(tw.Duration)))
	return tw.value, false
}

// Jump implements Animator.
func (tw *Tween) Jump(v float64) {
	tw.from, tw.to, tw.value = v, v, v
	tw.active = false
}
