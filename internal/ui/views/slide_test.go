package views

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	got := Fit([]string{"abcdef", "x"}, 4, 3)
	assert.Equal(t, []string{"abcd", "x   ", "    "}, got)

	assert.Nil(t, Fit([]string{"abc"}, 0, 2))
	assert.Nil(t, Fit([]string{"abc"}, 2, 0))
}

func TestRenderSlide_ExactSize(t *testing.T) {
	s := NewStyles()

	for _, size := range [][2]int{{20, 8}, {6, 3}, {3, 2}, {40, 4}} {
		lines := s.RenderSlide("intro", "some body text\nsecond line\nthird line", size[0], size[1], true)
		require.Len(t, lines, size[1])
		for _, line := range lines {
			assert.Equal(t, size[0], ansi.StringWidth(line))
		}
	}

	assert.Nil(t, s.RenderSlide("x", "y", 0, 5, false))
}

func TestNaturalSize(t *testing.T) {
	s := NewStyles()

	w, h := s.NaturalSize("t", "0123456789\nab")
	assert.Equal(t, 10+s.Slide.GetHorizontalFrameSize(), w)
	assert.Equal(t, 4+s.Slide.GetVerticalFrameSize(), h)
}
