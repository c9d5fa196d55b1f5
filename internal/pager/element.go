package pager

import "viewpager/internal/domain"

// Element is the axis-aware size and position holder shared by the frame,
// the track and every view. Size and position reads always project through
// the pager's current axis, so switching axis reinterprets an element
// without re-measuring it.
type Element struct {
	surface Surface
	pager   *Pager
	x, y    float64
	width   float64
	height  float64
}

func newElement(p *Pager, s Surface) Element {
	e := Element{surface: s, pager: p}
	e.Measure()
	return e
}

// Surface returns the measurable surface bound to the element
func (e *Element) Surface() Surface { return e.surface }

// SetSize overrides the element size. A zero argument falls back to
// measuring the bound surface.
func (e *Element) SetSize(width, height float64) {
	if width == 0 && e.surface != nil {
		width = e.surface.Width()
	}
	if height == 0 && e.surface != nil {
		height = e.surface.Height()
	}
	e.width = width
	e.height = height
}

// Measure re-reads both dimensions from the surface
func (e *Element) Measure() {
	e.SetSize(0, 0)
}

// Size returns the size along the active axis
func (e *Element) Size() float64 {
	return e.SizeOf(e.pager.opts.Axis.Dimension())
}

// SizeOf returns the named dimension
func (e *Element) SizeOf(d domain.Dimension) float64 {
	if d == domain.Height {
		return e.height
	}
	return e.width
}

// Dimensions returns both measured dimensions
func (e *Element) Dimensions() domain.Size {
	return domain.Size{Width: e.width, Height: e.height}
}

// SetPosition writes the coordinate on the active axis only
func (e *Element) SetPosition(position float64) {
	if e.pager.opts.Axis == domain.AxisY {
		e.y = position
	} else {
		e.x = position
	}
}

// Position reads the coordinate on the active axis
func (e *Element) Position() float64 {
	if e.pager.opts.Axis == domain.AxisY {
		return e.y
	}
	return e.x
}
