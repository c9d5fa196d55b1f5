package pager

import "viewpager/internal/domain"

// View is one page managed by the pager
type View struct {
	Element

	index     int
	key       string
	inBounds  bool
	isCurrent bool
	isVisible bool
	target    float64
	origin    float64
	start     float64 // leading edge in natural track flow, before any wrap shift
	removed   bool
}

func newView(p *Pager, s Surface, index int, key string) *View {
	v := &View{
		Element:  newElement(p, s),
		index:    index,
		key:      key,
		inBounds: true,
	}
	v.setTarget()
	v.setOrigin(p.trackPosition)
	return v
}

// Index is the view's position in the ordered collection
func (v *View) Index() int { return v.index }

// Key is the optional identifier given at registration
func (v *View) Key() string { return v.key }

// IsCurrent reports whether this is the pager's current view
func (v *View) IsCurrent() bool { return v.isCurrent }

// IsVisible reports whether the view is inside the current window
func (v *View) IsVisible() bool { return v.isVisible }

// InBounds is false only under infinite mode when the view was wrapped ahead of the window
func (v *View) InBounds() bool { return v.inBounds }

// Target is the track position at which this view is aligned in the frame
func (v *View) Target() float64 { return v.target }

// Origin is the target relative to the track position of the last layout pass
func (v *View) Origin() float64 { return v.origin }

func (v *View) setTarget() {
	target := v.pager.StartCoords(v.index)
	if v.pager.opts.Align != 0 {
		target += v.pager.AlignOffset(v)
	}
	v.target = target
}

func (v *View) setOrigin(trackPosition float64) {
	v.origin = v.target - trackPosition
}

// ViewStyles describes how a rendering layer should lay out a view
type ViewStyles struct {
	// Inline is set on the x axis, where views flow side by side
	Inline bool
	// Dimension and Percent size the view as a share of the track when
	// ViewsToShow is fixed; HasPercent is false for auto
	Dimension  domain.Dimension
	Percent    float64
	HasPercent bool
	// Relative is set when the view must be shifted from its natural place
	// by Offset along the active axis (infinite wraparound)
	Relative bool
	Offset   float64
}

// Styles returns the layout description for the view
func (v *View) Styles() ViewStyles {
	opts := v.pager.opts
	styles := ViewStyles{
		Inline:    opts.Axis == domain.AxisX,
		Dimension: opts.Axis.Dimension(),
	}

	if !opts.ViewsToShow.IsAuto() && len(v.pager.views) > 0 {
		styles.Percent = 100 / float64(len(v.pager.views))
		styles.HasPercent = true
	}

	if opts.Infinite && !v.inBounds {
		styles.Relative = true
		styles.Offset = v.Position() - v.start
	}

	return styles
}
