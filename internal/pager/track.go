package pager

import "viewpager/internal/domain"

// Track is the movable strip holding every view
type Track struct {
	Element
}

// TrackStyles describes how a rendering layer should place the track
type TrackStyles struct {
	Translate domain.Vector
	// Dimension and Percent give the track length relative to the frame when
	// ViewsToShow is fixed; HasPercent is false for auto
	Dimension  domain.Dimension
	Percent    float64
	HasPercent bool
}

// Styles resolves the displayed position for trackPosition and the track length.
// It publishes a scroll event through PositionValue.
func (t *Track) Styles(trackPosition float64) TrackStyles {
	p := t.pager
	styles := TrackStyles{
		Translate: p.PositionValue(trackPosition),
		Dimension: p.opts.Axis.Dimension(),
	}

	if p.TrackSize(true) != 0 && !p.opts.ViewsToShow.IsAuto() {
		styles.Percent = float64(len(p.views)) / float64(p.opts.ViewsToShow.Count()) * 100
		styles.HasPercent = true
	}

	return styles
}
