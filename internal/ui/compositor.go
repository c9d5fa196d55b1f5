package ui

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"viewpager/internal/domain"
	"viewpager/internal/pager"
	"viewpager/internal/ui/views"
)

type segment struct {
	at   int
	text string
}

// Compose lays the views out for position and cuts the frame window out of
// the track. tiles[i] holds the rendered lines of view i at its measured
// size. The result is frameH lines of frameW cells.
func Compose(p *pager.Pager, position float64, tiles [][]string, frameW, frameH int) string {
	if frameW <= 0 || frameH <= 0 {
		return ""
	}

	p.SetViewStyles(position)
	translate := p.Track().Styles(position).Translate
	axis := p.Options().Axis
	offset := translate.Get(axis)

	rows := make([][]segment, frameH)
	for i, v := range p.Views() {
		if i >= len(tiles) {
			break
		}
		w := int(math.Round(v.SizeOf(domain.Width)))
		h := int(math.Round(v.SizeOf(domain.Height)))
		if w <= 0 || h <= 0 {
			continue
		}
		lines := views.Fit(tiles[i], w, h)
		lead := int(math.Round(offset + v.Position()))

		if axis == domain.AxisX {
			from, to := max(0, -lead), min(w, frameW-lead)
			if from >= to {
				continue
			}
			for row := 0; row < min(h, frameH); row++ {
				rows[row] = append(rows[row], segment{at: lead + from, text: ansi.Cut(lines[row], from, to)})
			}
			continue
		}

		for row := max(0, -lead); row < min(h, frameH-lead); row++ {
			rows[lead+row] = append(rows[lead+row], segment{at: 0, text: ansi.Cut(lines[row], 0, frameW)})
		}
	}

	out := make([]string, frameH)
	for r, segs := range rows {
		slices.SortFunc(segs, func(a, b segment) int { return cmp.Compare(a.at, b.at) })
		var b strings.Builder
		col := 0
		for _, s := range segs {
			if s.at < col {
				continue
			}
			b.WriteString(strings.Repeat(" ", s.at-col))
			b.WriteString(s.text)
			col = s.at + ansi.StringWidth(s.text)
		}
		if col < frameW {
			b.WriteString(strings.Repeat(" ", frameW-col))
		}
		out[r] = b.String()
	}
	return strings.Join(out, "\n")
}
