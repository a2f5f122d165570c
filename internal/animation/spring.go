package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	springFPS = 60

	// maxSpringSteps bounds the catch-up work after a long pause.
	maxSpringSteps = 240

	settleDistance = 0.01
	settleVelocity = 0.01
)

// Spring is an Animator backed by a damped harmonic oscillator. Unlike Tween
// it has no fixed duration; it runs until position and velocity settle.
type Spring struct {
	spring harmonica.Spring
	step   time.Duration

	pos, vel, target float64
	last             time.Time
	active           bool
}

// NewSpring returns a settled spring resting at initial. frequency is the
// angular frequency; damping below 1 overshoots, 1 is critically damped.
func NewSpring(initial, frequency, damping float64) *Spring {
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(springFPS), frequency, damping),
		step:   time.Second / springFPS,
		pos:    initial,
		target: initial,
	}
}

// Value implements Animator.
func (s *Spring) Value() float64 { return s.pos }

// Target implements Animator.
func (s *Spring) Target() float64 { return s.target }

// Active implements Animator.
func (s *Spring) Active() bool { return s.active }

// AnimateTo implements Animator. Velocity carries over when interrupted.
func (s *Spring) AnimateTo(target float64, now time.Time) {
	if s.active {
		s.Advance(now)
	}
	if target == s.target && !s.active {
		return
	}
	s.target = target
	s.last = now
	s.active = true
}

// Advance implements Animator.
func (s *Spring) Advance(now time.Time) (float64, bool) {
	if !s.active {
		return s.pos, true
	}
	steps := int(now.Sub(s.last) / s.step)
	if steps > maxSpringSteps {
		steps = maxSpringSteps
	}
	for i := 0; i < steps; i++ {
		s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	}
	if steps > 0 {
		s.last = s.last.Add(time.Duration(steps) * s.step)
	}
	if math.Abs(s.pos-s.target) < settleDistance && math.Abs(s.vel) < settleVelocity {
		s.Jump(s.target)
		return s.pos, true
	}
	return s.pos, false
}

// Jump implements Animator.
func (s *Spring) Jump(v float64) {
	s.pos, s.target, s.vel = v, v, 0
	s.active = false
}
