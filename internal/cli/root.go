// Package cli implements the viewpager command-line interface.
//
// The root command loads .viewpager.toml (plus VIEWPAGER_ environment
// overrides), lets flags override it, and runs the terminal carousel over a
// directory of slide files or the built-in demo set.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"viewpager/internal/config"
	"viewpager/internal/eventbus"
	"viewpager/internal/pager"
	"viewpager/internal/ui"
)

type flags struct {
	configPath  string
	logFile     string
	axis        string
	views       string
	infinite    bool
	contain     bool
	align       float64
	autoSize    string
	start       string
	verbose     bool
	writeConfig bool
}

// Execute runs the viewpager CLI
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the root command with all flags
func NewRootCommand() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:          "viewpager [slides-dir]",
		Short:        "Page through slides in the terminal",
		Long:         `viewpager shows a directory of text files as a carousel. Drag with the mouse or use the keys to move between slides.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if f.verbose {
				level = charmlog.DebugLevel
			}

			var w io.Writer = io.Discard
			if f.logFile != "" {
				file, err := openLog(f.logFile)
				if err != nil {
					return err
				}
				cobra.OnFinalize(func() { file.Close() })
				w = file
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(w, level)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f)
		},
	}

	fl := root.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "config file (default ./"+config.FileName+")")
	fl.StringVar(&f.logFile, "log-file", "viewpager.log", "log file, empty to disable")
	fl.StringVar(&f.axis, "axis", "x", "axis to page along: x or y")
	fl.StringVar(&f.views, "views", "1", "views to show: a number or auto")
	fl.BoolVar(&f.infinite, "infinite", false, "wrap around past either end")
	fl.BoolVar(&f.contain, "contain", false, "never leave a gap at either end")
	fl.Float64Var(&f.align, "align", 0, "alignment of the current view within the frame, 0 to 1")
	fl.StringVar(&f.autoSize, "autosize", "false", "size the frame to the visible views: true, false, width or height")
	fl.StringVar(&f.start, "start", "", "slide key or index to open on")
	fl.BoolVar(&f.writeConfig, "write-config", false, "write the effective configuration and exit")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error getting current directory: %w", err)
	}
	svc := config.NewConfigService(cwd, logger)

	cfg, err := loadConfig(svc, f)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, f)
	if len(args) > 0 {
		cfg.UI.SlidesDir = args[0]
	}

	pagerOpts, err := cfg.PagerOptions()
	if err != nil {
		return err
	}

	if f.writeConfig {
		path := f.configPath
		if path == "" {
			path = filepath.Join(cwd, config.FileName)
		}
		if err := svc.SaveToPath(cfg, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	}

	slides := ui.DemoSlides()
	if cfg.UI.SlidesDir != "" {
		if slides, err = ui.LoadSlides(cfg.UI.SlidesDir); err != nil {
			return err
		}
	}

	registry := pager.NewRegistry()
	p, err := pager.New(pager.Deps{
		Bus:      eventbus.New(logger),
		Logger:   logger,
		Observer: registry,
	}, pagerOpts...)
	if err != nil {
		return err
	}

	model := ui.NewModel(ui.Deps{
		Pager:    p,
		Registry: registry,
		Logger:   logger,
		Config:   cfg,
		Slides:   slides,
		Start:    f.start,
	})
	defer model.Close()

	logger.Info("starting", "slides", len(slides), "pager", p)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func loadConfig(svc config.ConfigService, f *flags) (*config.Config, error) {
	if f.configPath == "" {
		return svc.Load()
	}
	cfg, err := svc.LoadFromPath(f.configPath)
	if errors.Is(err, os.ErrNotExist) && f.writeConfig {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// applyFlags copies explicitly set flags over the loaded configuration
func applyFlags(cmd *cobra.Command, cfg *config.Config, f *flags) {
	changed := cmd.Flags().Changed
	if changed("axis") {
		cfg.Pager.Axis = f.axis
	}
	if changed("views") {
		cfg.Pager.ViewsToShow = f.views
	}
	if changed("infinite") {
		cfg.Pager.Infinite = f.infinite
	}
	if changed("contain") {
		cfg.Pager.Contain = f.contain
	}
	if changed("align") {
		cfg.Pager.Align = f.align
	}
	if changed("autosize") {
		cfg.Pager.AutoSize = f.autoSize
	}
}
