package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Fit crops or pads lines to exactly h lines of w cells each
func Fit(lines []string, w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	out := make([]string, h)
	blank := strings.Repeat(" ", w)
	for i := range out {
		if i >= len(lines) {
			out[i] = blank
			continue
		}
		line := ansi.Cut(lines[i], 0, w)
		if pad := w - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return out
}

func (s *Styles) slideContent(title, body string) string {
	return s.SlideTitle.Render(title) + "\n\n" + strings.TrimRight(body, "\n")
}

// NaturalSize is the box size a slide takes when nothing constrains it
func (s *Styles) NaturalSize(title, body string) (int, int) {
	content := s.slideContent(title, body)
	style := s.Slide
	return lipgloss.Width(content) + style.GetHorizontalFrameSize(),
		lipgloss.Height(content) + style.GetVerticalFrameSize()
}

// RenderSlide draws a slide into exactly w by h cells
func (s *Styles) RenderSlide(title, body string, w, h int, current bool) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	style := s.SlideStyle(current)

	innerH := h - style.GetVerticalFrameSize()
	if w <= style.GetHorizontalFrameSize() || innerH <= 0 {
		return Fit(nil, w, h)
	}

	content := strings.Split(s.slideContent(title, body), "\n")
	if len(content) > innerH {
		content = content[:innerH]
	}

	box := style.
		Width(w - style.GetHorizontalBorderSize()).
		Height(h - style.GetVerticalBorderSize()).
		Render(strings.Join(content, "\n"))

	return Fit(strings.Split(box, "\n"), w, h)
}
