package pager

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"viewpager/internal/domain"
	"viewpager/internal/eventbus"
)

// Deps are the collaborators a pager talks to. Zero values are replaced by
// a private event bus, a discarding logger and no resize observation.
type Deps struct {
	Bus      eventbus.EventBus
	Logger   *log.Logger
	Observer ResizeObserver
}

// Pager owns the view collection and derives every layout value from it.
// All methods are meant to be called from a single goroutine.
type Pager struct {
	bus      eventbus.EventBus
	logger   *log.Logger
	observer ResizeObserver

	opts  Options
	views []*View
	frame *Frame
	track *Track

	currentIndex  int
	currentView   *View
	currentTween  float64
	trackPosition float64
	isSwiping     bool
}

// New creates a pager with default options overridden by opts
func New(deps Deps, opts ...Option) (*Pager, error) {
	options := DefaultOptions().Apply(opts...)
	if err := options.Validate(); err != nil {
		return nil, err
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bus := deps.Bus
	if bus == nil {
		bus = eventbus.New(logger)
	}

	return &Pager{
		bus:      bus,
		logger:   logger,
		observer: deps.Observer,
		opts:     options,
	}, nil
}

// Bus returns the event bus the pager publishes on
func (p *Pager) Bus() eventbus.EventBus { return p.bus }

// On subscribes handler to one pager event and returns the unsubscribe function
func (p *Pager) On(eventType domain.EventType, handler eventbus.EventHandler) func() {
	return p.bus.Subscribe(eventType, handler)
}

func (p *Pager) emit(event domain.DomainEvent) {
	p.bus.Publish(event)
}

// Options returns the current options snapshot
func (p *Pager) Options() Options { return p.opts }

// SetOptions merges opts over the current snapshot. The merged snapshot is
// validated as a whole; on error the previous snapshot stays in place.
// A change of ViewsToShow re-announces the visible window without moving the track.
func (p *Pager) SetOptions(opts ...Option) error {
	next := p.opts.Apply(opts...)
	if err := next.Validate(); err != nil {
		return err
	}

	last := p.opts
	p.opts = next

	if last.ViewsToShow != next.ViewsToShow {
		p.updateVisibility()
		p.emit(domain.ViewChangeEvent{Indices: p.CurrentIndices()})
	}
	return nil
}

// Hydrate re-measures every element and recomputes all derived layout
func (p *Pager) Hydrate() {
	if p.frame != nil {
		p.frame.Measure()
	}
	if p.track != nil {
		p.track.Measure()
	}
	for _, v := range p.views {
		v.Measure()
	}
	for _, v := range p.views {
		v.setTarget()
	}

	p.SetPositionValue()
	p.SetViewStyles(p.trackPosition)

	p.logger.Debug("hydrated", "views", len(p.views), "trackPosition", p.trackPosition)
	p.emit(domain.HydratedEvent{})
}

// AddFrame registers the viewport surface
func (p *Pager) AddFrame(s Surface) *Frame {
	p.frame = &Frame{Element: newElement(p, s)}
	if p.observer != nil && s != nil {
		p.observer.Observe(s, p.Hydrate)
	}
	return p.frame
}

// AddTrack registers the track surface
func (p *Pager) AddTrack(s Surface) *Track {
	p.track = &Track{Element: newElement(p, s)}
	return p.track
}

// Frame returns the registered frame, or nil
func (p *Pager) Frame() *Frame { return p.frame }

// Track returns the registered track, or nil
func (p *Pager) Track() *Track { return p.track }

// AddView appends a view for s. The first view added becomes current.
func (p *Pager) AddView(s Surface, key string) *View {
	index := len(p.views)
	v := newView(p, s, index, key)
	p.views = append(p.views, v)

	if p.currentView == nil {
		p.SetCurrentView(WithIndex(index), SuppressEvent())
	} else {
		p.updateVisibility()
	}

	if p.observer != nil && s != nil {
		p.observer.Observe(s, p.Hydrate)
	}

	p.logger.Debug("view added", "index", index, "key", key)
	p.emit(domain.ViewAddedEvent{Index: index, Key: key})
	return v
}

// RemoveView drops v from the collection and renumbers the survivors so
// indices stay dense. Removing a view the pager does not own changes nothing.
func (p *Pager) RemoveView(v *View) error {
	i := slices.Index(p.views, v)
	if v == nil || i < 0 {
		return ErrViewNotFound
	}

	p.views = slices.Delete(p.views, i, i+1)
	if p.observer != nil && v.surface != nil {
		p.observer.Unobserve(v.surface)
	}
	v.removed = true
	v.isCurrent = false
	v.isVisible = false

	for j, rest := range p.views {
		rest.index = j
	}
	for _, rest := range p.views {
		rest.setTarget()
	}

	switch {
	case len(p.views) == 0:
		p.currentView = nil
		p.currentIndex = 0
		p.SetPositionValue()
	case p.currentView == v:
		p.currentView = nil
		p.SetCurrentView(WithIndex(clampIndex(i, 0, len(p.views)-1)), SuppressEvent())
	default:
		p.currentIndex = p.currentView.index
		p.updateVisibility()
		p.SetPositionValue()
	}

	p.logger.Debug("view removed", "index", i, "key", v.key)
	p.emit(domain.ViewRemovedEvent{Index: i, Key: v.key})
	return nil
}

// Views returns the ordered view collection
func (p *Pager) Views() []*View {
	return slices.Clone(p.views)
}

// ViewCount returns the number of registered views
func (p *Pager) ViewCount() int { return len(p.views) }

// View resolves any integer index to a view by true modulo. Returns nil when empty.
func (p *Pager) View(index int) *View {
	if len(p.views) == 0 {
		return nil
	}
	return p.views[moduloIndex(index, len(p.views))]
}

// IndexOf resolves key to a view index, matching either a view key or a
// numeric index. Unknown keys resolve to 0.
func (p *Pager) IndexOf(key string) int {
	index := 0
	n, numErr := strconv.Atoi(key)
	for i, v := range p.views {
		if v.key == key || (numErr == nil && i == n) {
			index = i
		}
	}
	return index
}

// CurrentIndex is unclamped under infinite mode
func (p *Pager) CurrentIndex() int { return p.currentIndex }

// CurrentView returns the current view, or nil when empty
func (p *Pager) CurrentView() *View { return p.currentView }

// TrackPosition is the resolved coordinate of the track's leading edge
func (p *Pager) TrackPosition() float64 { return p.trackPosition }

// CurrentTween is the last value passed to PositionValue or pushed by a gesture
func (p *Pager) CurrentTween() float64 { return p.currentTween }

// IsSwiping reports whether a gesture currently owns the track position
func (p *Pager) IsSwiping() bool { return p.isSwiping }

// SetSwiping sets the gesture ownership flag
func (p *Pager) SetSwiping(swiping bool) { p.isSwiping = swiping }

// Prev moves back by ViewsToMove
func (p *Pager) Prev() {
	p.SetCurrentView(WithDirection(-1))
}

// Next moves forward by ViewsToMove
func (p *Pager) Next() {
	p.SetCurrentView(WithDirection(1))
}

// ScrollTo makes index the current view
func (p *Pager) ScrollTo(index int) {
	p.SetCurrentView(WithIndex(index))
}

type navigation struct {
	direction     int
	index         int
	suppressEvent bool
}

// NavOption adjusts a SetCurrentView call
type NavOption func(*navigation)

// WithDirection moves by direction * ViewsToMove
func WithDirection(direction int) NavOption {
	return func(n *navigation) { n.direction = direction }
}

// WithIndex starts from index instead of the current index
func WithIndex(index int) NavOption {
	return func(n *navigation) { n.index = index }
}

// SuppressEvent skips the viewChange announcement
func SuppressEvent() NavOption {
	return func(n *navigation) { n.suppressEvent = true }
}

// SetCurrentView moves the current index and resolves the new track position.
// Under infinite mode the index is left unclamped and wrapped at lookup time.
func (p *Pager) SetCurrentView(opts ...NavOption) {
	if len(p.views) == 0 {
		return
	}

	nav := navigation{index: p.currentIndex}
	for _, opt := range opts {
		opt(&nav)
	}

	newIndex := nav.index + nav.direction*p.opts.ViewsToMove
	currentIndex := newIndex
	if !p.opts.Infinite {
		currentIndex = clampIndex(newIndex, 0, len(p.views)-1)
	}

	previousView := p.currentView
	currentView := p.View(currentIndex)

	p.currentIndex = currentIndex
	p.currentView = currentView

	if previousView != nil {
		previousView.isCurrent = false
	}
	currentView.isCurrent = true

	p.updateVisibility()
	p.SetPositionValue()

	p.logger.Debug("current view set", "index", currentIndex, "trackPosition", p.trackPosition)
	if !nav.suppressEvent {
		p.emit(domain.ViewChangeEvent{Indices: p.CurrentIndices()})
	}
}

func (p *Pager) updateVisibility() {
	visible := lo.SliceToMap(p.CurrentIndices(), func(i int) (int, struct{}) {
		return i, struct{}{}
	})
	for _, v := range p.views {
		_, ok := visible[v.index]
		v.isVisible = ok
	}
}

// SetPositionValue resolves the track position from the current view's target.
// It does nothing while a gesture owns the position.
func (p *Pager) SetPositionValue() {
	if p.isSwiping {
		return
	}
	target := 0.0
	if p.currentView != nil {
		target = p.currentView.target
	}
	p.resolvePosition(target)
}

// SetPositionValueTo stores an externally supplied position. While swiping
// the value is kept raw; otherwise the infinite loop offset and the contain
// clamp are applied.
func (p *Pager) SetPositionValueTo(trackPosition float64) {
	if p.isSwiping {
		p.trackPosition = trackPosition
		p.currentTween = trackPosition
		return
	}
	p.resolvePosition(trackPosition)
}

func (p *Pager) resolvePosition(trackPosition float64) {
	trackSize := p.TrackSize(true)

	if p.opts.Infinite && len(p.views) > 0 {
		// keep the raw coordinate bounded across full loops; PositionValue
		// handles the displayed wrap
		loops := math.Floor(float64(p.currentIndex) / float64(len(p.views)))
		trackPosition -= loops * trackSize
	}

	if p.opts.Contain {
		trailing := p.frameSize(p.opts.AutoSize.Enabled())
		trackPosition = clamp(trackPosition, trailing-trackSize, 0)
	}

	p.trackPosition = trackPosition
}

// SetViewStyles lays out every view for trackPosition. It must run with the
// same position that is about to be rendered, before the views are drawn.
func (p *Pager) SetViewStyles(trackPosition float64) {
	trackSize := p.TrackSize(true)
	wrapped := modulo(trackPosition, -trackSize)
	align := p.opts.Align

	last := 0.0
	for _, v := range p.views {
		size := v.Size()
		next := last + size
		position := last
		v.start = last

		if p.opts.Infinite && next+size*align < math.Abs(wrapped) {
			// fold the view around so it reappears ahead of the window
			position += trackSize
			v.inBounds = false
		} else {
			v.inBounds = true
		}

		v.SetPosition(position)
		v.setOrigin(trackPosition)
		last = next
	}
}

// CurrentIndices returns the indices on screen, in order
func (p *Pager) CurrentIndices() []int {
	n := len(p.views)
	indices := []int{}
	if n == 0 {
		return indices
	}

	viewsToShow := p.opts.ViewsToShow.Count()
	minIndex := p.currentIndex
	maxIndex := p.currentIndex + viewsToShow - 1

	if p.opts.Contain {
		minIndex = clampIndex(minIndex, 0, max(0, n-viewsToShow))
		maxIndex = clampIndex(maxIndex, 0, n-1)
		for i := minIndex; i <= maxIndex; i++ {
			indices = append(indices, i)
		}
		return indices
	}

	for i := minIndex; i <= maxIndex; i++ {
		if p.opts.Infinite {
			indices = append(indices, moduloIndex(i, n))
		} else {
			indices = append(indices, clampIndex(i, 0, n-1))
		}
	}
	return lo.Uniq(indices)
}

// MaxDimensions sums the view sizes along the active axis and takes the
// maximum across it
func (p *Pager) MaxDimensions(indices []int) domain.Size {
	var widths, heights []float64
	for _, i := range indices {
		v := p.View(i)
		if v == nil {
			continue
		}
		widths = append(widths, v.SizeOf(domain.Width))
		heights = append(heights, v.SizeOf(domain.Height))
	}

	if p.opts.Axis == domain.AxisX {
		return domain.Size{Width: sum(widths), Height: maxOf(heights)}
	}
	return domain.Size{Width: maxOf(widths), Height: sum(heights)}
}

// FrameSize returns the frame size along the active axis
func (p *Pager) FrameSize() float64 {
	return p.frameSize(p.opts.AutoSize.Enabled())
}

// FrameDimensions returns both frame dimensions, derived from the visible
// views under auto size
func (p *Pager) FrameDimensions() domain.Size {
	return p.frameDimensions(p.opts.AutoSize.Enabled())
}

func (p *Pager) frameSize(autoSize bool) float64 {
	return p.frameDimensions(autoSize).Get(p.opts.Axis.Dimension())
}

func (p *Pager) frameDimensions(autoSize bool) domain.Size {
	if len(p.views) == 0 {
		return domain.Size{}
	}
	if autoSize {
		return p.MaxDimensions(p.CurrentIndices())
	}
	if p.frame != nil {
		return p.frame.Dimensions()
	}
	return domain.Size{}
}

// TrackSize sums the sizes of all views, optionally leaving out the last one
func (p *Pager) TrackSize(includeLast bool) float64 {
	end := len(p.views)
	if !includeLast && end > 0 {
		end--
	}
	return sum(lo.Map(p.views[:end], func(v *View, _ int) float64 {
		return v.Size()
	}))
}

// StartCoords is the negative sum of the sizes of every view before index
func (p *Pager) StartCoords(index int) float64 {
	end := clampIndex(index, 0, len(p.views))
	return -sum(lo.Map(p.views[:end], func(v *View, _ int) float64 {
		return v.Size()
	}))
}

// AlignOffset is how far align shifts v inside the measured frame
func (p *Pager) AlignOffset(v *View) float64 {
	return (p.frameSize(false) - v.Size()) * p.opts.Align
}

// PositionValue records trackPosition as the current tween, wraps it under
// infinite mode, publishes a scroll event and returns it on the active axis.
func (p *Pager) PositionValue(trackPosition float64) domain.Vector {
	p.currentTween = trackPosition

	if p.opts.Infinite {
		trackPosition = modulo(trackPosition, -p.TrackSize(true))
	}

	progress := 0.0
	if denominator := p.TrackSize(false); denominator != 0 {
		progress = trackPosition / denominator
	}
	p.emit(domain.ScrollEvent{Progress: progress, Position: trackPosition})

	return domain.Vector{}.With(p.opts.Axis, trackPosition)
}

// ResetViewIndex re-expresses the current index as its wrapped equivalent
// without announcing a change
func (p *Pager) ResetViewIndex() {
	if len(p.views) == 0 {
		return
	}
	p.SetCurrentView(WithIndex(moduloIndex(p.currentIndex, len(p.views))), SuppressEvent())
}

func (p *Pager) String() string {
	return fmt.Sprintf("Pager{views: %d, index: %d, position: %g}", len(p.views), p.currentIndex, p.trackPosition)
}
