package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSlides is returned when a slides directory holds no readable files
var ErrNoSlides = errors.New("no slides found")

// Slide is one page of content. Key identifies it for --start and in events.
type Slide struct {
	Key   string
	Title string
	Body  string
}

// LoadSlides reads every regular, non-hidden file in dir as a slide,
// ordered by file name
func LoadSlides(dir string) ([]Slide, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read slides directory: %w", err)
	}

	var slides []Slide
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read slide %s: %w", entry.Name(), err)
		}
		name := entry.Name()
		slides = append(slides, Slide{
			Key:   name,
			Title: strings.TrimSuffix(name, filepath.Ext(name)),
			Body:  string(data),
		})
	}

	if len(slides) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSlides, dir)
	}
	return slides, nil
}

// DemoSlides is the built-in slide set used without a slides directory
func DemoSlides() []Slide {
	return []Slide{
		{Key: "welcome", Title: "Welcome", Body: "Drag with the mouse or use the arrow keys.\nPress ? for every binding."},
		{Key: "frame", Title: "Frame", Body: "The frame is the window.\nOnly what lies inside it is drawn."},
		{Key: "track", Title: "Track", Body: "Views sit on a track that slides\nalong one axis."},
		{Key: "infinite", Title: "Infinite", Body: "Press i to loop around.\nViews past the end fold back to the front."},
		{Key: "contain", Title: "Contain", Body: "With contain on, the track\nnever leaves a gap at either end."},
		{Key: "swipe", Title: "Swipe", Body: "A quick flick needs half a view.\nA slow drag needs half of every view it moves."},
	}
}
