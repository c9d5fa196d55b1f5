// Package swipe turns pointer and touch input into pager navigation.
//
// A Recognizer is idle until a gesture starts. While swiping it owns the
// pager's track position and pushes the dragged coordinate into it; on
// release it either commits Prev/Next or snaps the track back to the
// current view's target.
//
// A release inside the flick timeout commits once the drag passes
// SwipeThreshold of the current view's size. A slower drag must pass that
// distance times ViewsToMove, so a flick only loosens the threshold when
// ViewsToMove is greater than one.
package swipe

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"viewpager/internal/domain"
	"viewpager/internal/pager"
)

// State is the recognizer's gesture state
type State int

const (
	Idle State = iota
	Swiping
)

func (s State) String() string {
	if s == Swiping {
		return "swiping"
	}
	return "idle"
}

// Point is a pointer coordinate in the host's units
type Point struct {
	X float64
	Y float64
}

func (p Point) get(axis domain.Axis) float64 {
	if axis == domain.AxisY {
		return p.Y
	}
	return p.X
}

// Clock supplies the current time for flick detection
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Recognizer is the swipe gesture state machine bound to one pager
type Recognizer struct {
	pager  *pager.Pager
	clock  Clock
	logger *log.Logger

	state      State
	start      Point
	diff       Point
	trackStart float64
	startedAt  time.Time
}

// Option configures a Recognizer
type Option func(*Recognizer)

// WithClock replaces the wall clock used to time flicks
func WithClock(c Clock) Option {
	return func(r *Recognizer) { r.clock = c }
}

// WithLogger sets the logger for gesture decisions
func WithLogger(l *log.Logger) Option {
	return func(r *Recognizer) { r.logger = l }
}

// New creates an idle recognizer driving p
func New(p *pager.Pager, opts ...Option) *Recognizer {
	r := &Recognizer{
		pager:  p,
		clock:  systemClock{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current gesture state
func (r *Recognizer) State() State { return r.state }

// Diff returns start minus the last pointer coordinate
func (r *Recognizer) Diff() Point { return r.diff }

// isSwipe is the directional gate: movement on the active axis must beat
// both the threshold and the movement on the cross axis
func (r *Recognizer) isSwipe(threshold float64) bool {
	axis := r.pager.Options().Axis
	along := math.Abs(r.diff.get(axis))
	across := math.Abs(r.diff.get(axis.Cross()))
	return along > math.Max(threshold, across)
}

// Start begins a gesture at pt. It always returns true: the host should
// suppress its default handling of the press.
func (r *Recognizer) Start(pt Point) bool {
	r.state = Swiping
	r.start = pt
	r.diff = Point{}
	r.trackStart = r.pager.CurrentTween()
	r.startedAt = r.clock.Now()
	r.pager.SetSwiping(true)

	r.pager.Bus().Publish(domain.SwipeStartEvent{})
	return true
}

// Move drags the track to follow pt. It returns true when the movement passed
// the directional gate and the host should suppress default scrolling.
// Moves without a started gesture are ignored.
func (r *Recognizer) Move(pt Point) bool {
	if r.state != Swiping || !r.pager.IsSwiping() {
		return false
	}

	opts := r.pager.Options()
	r.diff = Point{X: r.start.X - pt.X, Y: r.start.Y - pt.Y}

	if !r.isSwipe(opts.SwipeThreshold) {
		return false
	}

	position := r.trackStart - r.diff.get(opts.Axis)
	r.pager.SetPositionValueTo(position)
	r.pager.Bus().Publish(domain.SwipeMoveEvent{Position: position})
	return true
}

// End releases the gesture and commits or snaps back.
// Releases without a started gesture are ignored.
func (r *Recognizer) End() {
	if r.state != Swiping {
		return
	}

	opts := r.pager.Options()
	size := 0.0
	if v := r.pager.CurrentView(); v != nil {
		size = v.Size()
	}

	flick := r.clock.Now().Sub(r.startedAt) < opts.FlickTimeout
	threshold := opts.SwipeThreshold * float64(opts.ViewsToMove) * size
	if flick {
		threshold = opts.SwipeThreshold * size
	}

	r.state = Idle
	r.pager.SetSwiping(false)

	direction := 0
	if r.diff.X != 0 || r.diff.Y != 0 {
		if r.isSwipe(threshold) {
			if r.diff.get(opts.Axis) < 0 {
				direction = -1
				r.pager.Prev()
			} else {
				direction = 1
				r.pager.Next()
			}
		} else {
			r.pager.SetPositionValue()
		}
	}

	r.logger.Debug("swipe ended", "flick", flick, "threshold", threshold, "diff", r.diff.get(opts.Axis), "direction", direction)
	r.pager.Bus().Publish(domain.SwipeEndEvent{Committed: direction != 0, Direction: direction})
}

// Leave force-ends a gesture when the pointer leaves the bound surface
func (r *Recognizer) Leave() {
	if r.state == Swiping {
		r.End()
	}
}

// Listeners are the input callbacks a host binds for the configured swipe
// mode. Callbacks for a disabled device are nil.
type Listeners struct {
	MouseDown  func(Point) bool
	MouseMove  func(Point) bool
	MouseUp    func()
	MouseLeave func()
	TouchStart func(Point) bool
	TouchMove  func(Point) bool
	TouchEnd   func()
}

// Listeners returns the callbacks for the pager's current swipe option
func (r *Recognizer) Listeners() Listeners {
	mode := r.pager.Options().Swipe
	var l Listeners

	if mode.Mouse() {
		l.MouseDown = r.Start
		l.MouseMove = r.Move
		l.MouseUp = r.End
		l.MouseLeave = r.Leave
	}
	if mode.Touch() {
		l.TouchStart = r.Start
		l.TouchMove = r.Move
		l.TouchEnd = r.End
	}
	return l
}
