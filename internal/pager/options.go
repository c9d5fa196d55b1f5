package pager

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"viewpager/internal/domain"
)

// ViewsToShow is either a fixed count of views or Auto, where the views size themselves
type ViewsToShow struct {
	auto  bool
	count int
}

// Auto lets each view keep its measured size
var Auto = ViewsToShow{auto: true}

// Fixed shows exactly n views in the frame
func Fixed(n int) ViewsToShow {
	return ViewsToShow{count: n}
}

// IsAuto reports whether the variant is Auto
func (v ViewsToShow) IsAuto() bool { return v.auto }

// Count returns the numeric count, treating Auto as one view
func (v ViewsToShow) Count() int {
	if v.auto {
		return 1
	}
	return v.count
}

func (v ViewsToShow) String() string {
	if v.auto {
		return "auto"
	}
	return strconv.Itoa(v.count)
}

// ParseViewsToShow accepts "auto" or a positive integer
func ParseViewsToShow(s string) (ViewsToShow, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "auto" {
		return Auto, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ViewsToShow{}, fmt.Errorf("%w: views to show %q is neither a number nor \"auto\"", ErrInvalidOptions, s)
	}
	if n < 1 {
		return ViewsToShow{}, fmt.Errorf("%w: views to show must be at least 1, got %d", ErrInvalidOptions, n)
	}
	return Fixed(n), nil
}

// AutoSize selects which frame dimensions follow the visible views
type AutoSize int

const (
	AutoSizeOff AutoSize = iota
	AutoSizeBoth
	AutoSizeWidth
	AutoSizeHeight
)

// Enabled reports whether any dimension is auto sized
func (a AutoSize) Enabled() bool { return a != AutoSizeOff }

// Sizes reports whether dimension d follows the visible views
func (a AutoSize) Sizes(d domain.Dimension) bool {
	switch a {
	case AutoSizeBoth:
		return true
	case AutoSizeWidth:
		return d == domain.Width
	case AutoSizeHeight:
		return d == domain.Height
	}
	return false
}

func (a AutoSize) String() string {
	switch a {
	case AutoSizeBoth:
		return "true"
	case AutoSizeWidth:
		return "width"
	case AutoSizeHeight:
		return "height"
	}
	return "false"
}

// ParseAutoSize accepts true, false, width or height
func ParseAutoSize(s string) (AutoSize, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", "false", "off":
		return AutoSizeOff, nil
	case "true", "on", "both":
		return AutoSizeBoth, nil
	case "width":
		return AutoSizeWidth, nil
	case "height":
		return AutoSizeHeight, nil
	}
	return AutoSizeOff, fmt.Errorf("%w: unknown auto size %q", ErrInvalidOptions, s)
}

// SwipeMode scopes which input devices may drive gestures
type SwipeMode int

const (
	SwipeOff SwipeMode = iota
	SwipeBoth
	SwipeMouse
	SwipeTouch
)

// Mouse reports whether mouse input drives gestures
func (s SwipeMode) Mouse() bool { return s == SwipeBoth || s == SwipeMouse }

// Touch reports whether touch input drives gestures
func (s SwipeMode) Touch() bool { return s == SwipeBoth || s == SwipeTouch }

func (s SwipeMode) String() string {
	switch s {
	case SwipeBoth:
		return "true"
	case SwipeMouse:
		return "mouse"
	case SwipeTouch:
		return "touch"
	}
	return "false"
}

// ParseSwipeMode accepts true, false, mouse or touch
func ParseSwipeMode(s string) (SwipeMode, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "false", "off":
		return SwipeOff, nil
	case "", "true", "on", "both":
		return SwipeBoth, nil
	case "mouse":
		return SwipeMouse, nil
	case "touch":
		return SwipeTouch, nil
	}
	return SwipeOff, fmt.Errorf("%w: unknown swipe mode %q", ErrInvalidOptions, s)
}

// Options is an immutable snapshot of pager settings
type Options struct {
	ViewsToShow    ViewsToShow
	ViewsToMove    int
	Align          float64
	Contain        bool
	Axis           domain.Axis
	AutoSize       AutoSize
	Infinite       bool
	Instant        bool
	Swipe          SwipeMode
	SwipeThreshold float64
	FlickTimeout   time.Duration
}

// DefaultOptions returns the settings a pager starts with
func DefaultOptions() Options {
	return Options{
		ViewsToShow:    Fixed(1),
		ViewsToMove:    1,
		Align:          0,
		Contain:        false,
		Axis:           domain.AxisX,
		AutoSize:       AutoSizeOff,
		Infinite:       false,
		Instant:        false,
		Swipe:          SwipeBoth,
		SwipeThreshold: 0.5,
		FlickTimeout:   300 * time.Millisecond,
	}
}

// Validate checks every option against its declared domain
func (o Options) Validate() error {
	if !o.ViewsToShow.IsAuto() && o.ViewsToShow.Count() < 1 {
		return fmt.Errorf("%w: views to show must be at least 1, got %d", ErrInvalidOptions, o.ViewsToShow.Count())
	}
	if o.ViewsToMove < 1 {
		return fmt.Errorf("%w: views to move must be at least 1, got %d", ErrInvalidOptions, o.ViewsToMove)
	}
	if !finite(o.Align) || o.Align < 0 || o.Align > 1 {
		return fmt.Errorf("%w: align must be within [0, 1], got %g", ErrInvalidOptions, o.Align)
	}
	if !o.Axis.Valid() {
		return fmt.Errorf("%w: unknown axis %q", ErrInvalidOptions, o.Axis)
	}
	if o.AutoSize < AutoSizeOff || o.AutoSize > AutoSizeHeight {
		return fmt.Errorf("%w: unknown auto size %d", ErrInvalidOptions, o.AutoSize)
	}
	if o.Swipe < SwipeOff || o.Swipe > SwipeTouch {
		return fmt.Errorf("%w: unknown swipe mode %d", ErrInvalidOptions, o.Swipe)
	}
	if !finite(o.SwipeThreshold) || o.SwipeThreshold <= 0 || o.SwipeThreshold >= 1 {
		return fmt.Errorf("%w: swipe threshold must be within (0, 1), got %g", ErrInvalidOptions, o.SwipeThreshold)
	}
	if o.FlickTimeout < 0 {
		return fmt.Errorf("%w: flick timeout must not be negative, got %s", ErrInvalidOptions, o.FlickTimeout)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Option updates one field of an options snapshot
type Option func(*Options)

func WithViewsToShow(v ViewsToShow) Option { return func(o *Options) { o.ViewsToShow = v } }
func WithViewsToMove(n int) Option         { return func(o *Options) { o.ViewsToMove = n } }
func WithAlign(a float64) Option           { return func(o *Options) { o.Align = a } }
func WithContain(c bool) Option            { return func(o *Options) { o.Contain = c } }
func WithAxis(a domain.Axis) Option        { return func(o *Options) { o.Axis = a } }
func WithAutoSize(a AutoSize) Option       { return func(o *Options) { o.AutoSize = a } }
func WithInfinite(i bool) Option           { return func(o *Options) { o.Infinite = i } }
func WithInstant(i bool) Option            { return func(o *Options) { o.Instant = i } }
func WithSwipe(s SwipeMode) Option         { return func(o *Options) { o.Swipe = s } }
func WithSwipeThreshold(t float64) Option  { return func(o *Options) { o.SwipeThreshold = t } }

func WithFlickTimeout(d time.Duration) Option {
	return func(o *Options) { o.FlickTimeout = d }
}

// WithOptions replaces the whole snapshot
func WithOptions(next Options) Option {
	return func(o *Options) { *o = next }
}

// Apply returns a copy of o with every option applied in order
func (o Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
