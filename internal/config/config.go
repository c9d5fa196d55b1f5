package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"viewpager/internal/domain"
	"viewpager/internal/pager"
)

// FileName is the configuration file looked up in the working directory
const FileName = ".viewpager.toml"

// EnvPrefix prefixes environment overrides, e.g. VIEWPAGER_PAGER_AXIS=y
const EnvPrefix = "VIEWPAGER"

// Config represents the application configuration
type Config struct {
	Version int         `mapstructure:"version" toml:"version"`
	Pager   PagerConfig `mapstructure:"pager" toml:"pager"`
	UI      UIConfig    `mapstructure:"ui" toml:"ui"`
}

// PagerConfig mirrors pager.Options in file form. Variant options are
// kept as strings so they survive a TOML round trip unchanged.
type PagerConfig struct {
	ViewsToShow    string  `mapstructure:"views_to_show" toml:"views_to_show"`
	ViewsToMove    int     `mapstructure:"views_to_move" toml:"views_to_move"`
	Align          float64 `mapstructure:"align" toml:"align"`
	Contain        bool    `mapstructure:"contain" toml:"contain"`
	Axis           string  `mapstructure:"axis" toml:"axis"`
	AutoSize       string  `mapstructure:"auto_size" toml:"auto_size"`
	Infinite       bool    `mapstructure:"infinite" toml:"infinite"`
	Instant        bool    `mapstructure:"instant" toml:"instant"`
	Swipe          string  `mapstructure:"swipe" toml:"swipe"`
	SwipeThreshold float64 `mapstructure:"swipe_threshold" toml:"swipe_threshold"`
	FlickTimeout   string  `mapstructure:"flick_timeout" toml:"flick_timeout"`
}

// UIConfig represents terminal front end settings
type UIConfig struct {
	SlidesDir string `mapstructure:"slides_dir" toml:"slides_dir"`
	ShowHelp  bool   `mapstructure:"show_help" toml:"show_help"`
	FPS       int    `mapstructure:"fps" toml:"fps"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct {
	logger   *log.Logger
	filePath string
}

// NewConfigService creates a config service reading FileName from dir
func NewConfigService(dir string, logger *log.Logger) ConfigService {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &configService{
		logger:   logger,
		filePath: filepath.Join(dir, FileName),
	}
}

// Load reads the service's file. A missing file yields the defaults with
// environment overrides applied.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cs.logger.Debug("no config file, using defaults", "path", cs.filePath)
		return load(newViper())
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s: %w", path, err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := load(v)
	if err != nil {
		return nil, err
	}
	cs.logger.Debug("config loaded", "path", path)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.logger.Debug("config saved", "path", path)
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()

	v.SetDefault("version", d.Version)
	v.SetDefault("pager.views_to_show", d.Pager.ViewsToShow)
	v.SetDefault("pager.views_to_move", d.Pager.ViewsToMove)
	v.SetDefault("pager.align", d.Pager.Align)
	v.SetDefault("pager.contain", d.Pager.Contain)
	v.SetDefault("pager.axis", d.Pager.Axis)
	v.SetDefault("pager.auto_size", d.Pager.AutoSize)
	v.SetDefault("pager.infinite", d.Pager.Infinite)
	v.SetDefault("pager.instant", d.Pager.Instant)
	v.SetDefault("pager.swipe", d.Pager.Swipe)
	v.SetDefault("pager.swipe_threshold", d.Pager.SwipeThreshold)
	v.SetDefault("pager.flick_timeout", d.Pager.FlickTimeout)
	v.SetDefault("ui.slides_dir", d.UI.SlidesDir)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
	v.SetDefault("ui.fps", d.UI.FPS)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// PagerOptions converts the pager section into validated pager options
func (c *Config) PagerOptions() ([]pager.Option, error) {
	pc := c.Pager

	viewsToShow, err := pager.ParseViewsToShow(pc.ViewsToShow)
	if err != nil {
		return nil, err
	}
	autoSize, err := pager.ParseAutoSize(pc.AutoSize)
	if err != nil {
		return nil, err
	}
	swipe, err := pager.ParseSwipeMode(pc.Swipe)
	if err != nil {
		return nil, err
	}
	flickTimeout, err := time.ParseDuration(pc.FlickTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: flick timeout: %w", pager.ErrInvalidOptions, err)
	}

	opts := []pager.Option{
		pager.WithViewsToShow(viewsToShow),
		pager.WithViewsToMove(pc.ViewsToMove),
		pager.WithAlign(pc.Align),
		pager.WithContain(pc.Contain),
		pager.WithAxis(domain.Axis(strings.ToLower(pc.Axis))),
		pager.WithAutoSize(autoSize),
		pager.WithInfinite(pc.Infinite),
		pager.WithInstant(pc.Instant),
		pager.WithSwipe(swipe),
		pager.WithSwipeThreshold(pc.SwipeThreshold),
		pager.WithFlickTimeout(flickTimeout),
	}

	if err := pager.DefaultOptions().Apply(opts...).Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	o := pager.DefaultOptions()
	return &Config{
		Version: 1,
		Pager: PagerConfig{
			ViewsToShow:    o.ViewsToShow.String(),
			ViewsToMove:    o.ViewsToMove,
			Align:          o.Align,
			Contain:        o.Contain,
			Axis:           string(o.Axis),
			AutoSize:       o.AutoSize.String(),
			Infinite:       o.Infinite,
			Instant:        o.Instant,
			Swipe:          o.Swipe.String(),
			SwipeThreshold: o.SwipeThreshold,
			FlickTimeout:   o.FlickTimeout.String(),
		},
		UI: UIConfig{
			ShowHelp: true,
			FPS:      60,
		},
	}
}
