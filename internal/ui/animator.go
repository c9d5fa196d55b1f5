package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	springFrequency = 7.0
	springDamping   = 1.0
	restDelta       = 0.01
)

// Animator tweens the displayed track position toward the pager's target
// with a critically damped spring
type Animator struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
	moving   bool
}

// NewAnimator creates a spring stepped fps times per second
func NewAnimator(fps int) *Animator {
	if fps <= 0 {
		fps = 60
	}
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

// Position is the currently displayed value
func (a *Animator) Position() float64 { return a.position }

// Moving reports whether the spring has not settled yet
func (a *Animator) Moving() bool { return a.moving }

// SetTarget retargets the spring without resetting its velocity
func (a *Animator) SetTarget(target float64) {
	a.target = target
	if a.position != target || a.velocity != 0 {
		a.moving = true
	}
}

// Jump places the spring at rest on position
func (a *Animator) Jump(position float64) {
	a.position = position
	a.target = position
	a.velocity = 0
	a.moving = false
}

// Step advances one frame and reports whether the spring came to rest on it
func (a *Animator) Step() bool {
	if !a.moving {
		return false
	}
	a.position, a.velocity = a.spring.Update(a.position, a.velocity, a.target)
	if math.Abs(a.position-a.target) < restDelta && math.Abs(a.velocity) < restDelta {
		a.Jump(a.target)
		return true
	}
	return false
}
