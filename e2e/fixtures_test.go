//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// SlideOption configures the slides written into a workspace
type SlideOption func(*slideOptions)

type slideOptions struct {
	files  map[string]string // filename -> contents
	config string
}

// WithSlides writes the given slide files instead of the default three
func WithSlides(files map[string]string) SlideOption {
	return func(opts *slideOptions) {
		opts.files = files
	}
}

// WithConfig writes a .viewpager.toml into the workspace
func WithConfig(toml string) SlideOption {
	return func(opts *slideOptions) {
		opts.config = toml
	}
}

// CreateTestWorkspace creates a workspace with a slides/ directory
func (tf *TUITestFramework) CreateTestWorkspace(opts ...SlideOption) (string, error) {
	tf.t.Helper()

	options := &slideOptions{
		files: map[string]string{
			"01-intro.txt":  "first slide",
			"02-middle.txt": "second slide",
			"03-end.txt":    "last slide",
		},
	}
	for _, opt := range opts {
		opt(options)
	}

	workspace, err := os.MkdirTemp("", "viewpager-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = workspace

	slides := filepath.Join(workspace, "slides")
	if err := os.MkdirAll(slides, 0755); err != nil {
		return "", fmt.Errorf("failed to create slides dir: %w", err)
	}
	for name, content := range options.files {
		if err := os.WriteFile(filepath.Join(slides, name), []byte(content), 0644); err != nil {
			return "", fmt.Errorf("failed to write slide %s: %w", name, err)
		}
	}

	if options.config != "" {
		if err := os.WriteFile(filepath.Join(workspace, ".viewpager.toml"), []byte(options.config), 0644); err != nil {
			return "", fmt.Errorf("failed to write config: %w", err)
		}
	}

	return workspace, nil
}
