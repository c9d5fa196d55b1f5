package pager

// Frame is the fixed viewport
type Frame struct {
	Element
}

// FrameStyles describes how a rendering layer should size the viewport
type FrameStyles struct {
	Relative     bool
	HideOverflow bool
	// MaxWidth and Height are set when auto sizing follows that dimension
	// and the visible views have a non-zero size
	MaxWidth    float64
	HasMaxWidth bool
	Height      float64
	HasHeight   bool
}

// Styles returns the frame layout. Under auto size the dimensions come from
// the currently visible views.
func (f *Frame) Styles() FrameStyles {
	p := f.pager
	styles := FrameStyles{Relative: true, HideOverflow: true}

	autoSize := p.opts.AutoSize
	if !autoSize.Enabled() {
		return styles
	}

	dims := p.FrameDimensions()
	if dims.Width == 0 || dims.Height == 0 {
		return styles
	}
	if autoSize == AutoSizeBoth || autoSize == AutoSizeWidth {
		styles.MaxWidth = dims.Width
		styles.HasMaxWidth = true
	}
	if autoSize == AutoSizeBoth || autoSize == AutoSizeHeight {
		styles.Height = dims.Height
		styles.HasHeight = true
	}
	return styles
}
