package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Status       lipgloss.Style
	StatusKey    lipgloss.Style
	Help         lipgloss.Style
	Slide        lipgloss.Style
	SlideCurrent lipgloss.Style
	SlideTitle   lipgloss.Style
	Progress     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	slide := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Slide:        slide,
		SlideCurrent: slide.BorderForeground(lipgloss.Color("99")),
		SlideTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Progress:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
	}
}

// SlideStyle returns the box style for a slide
func (s *Styles) SlideStyle(current bool) lipgloss.Style {
	if current {
		return s.SlideCurrent
	}
	return s.Slide
}
