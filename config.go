package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/justinmdickey/scrolllabel/marquee"
)

// Config holds all application configuration
type Config struct {
	UI struct {
		Color    string `mapstructure:"color"`
		MaxWidth int    `mapstructure:"max_width"`
		Bold     bool   `mapstructure:"bold"`
	} `mapstructure:"ui"`
	Scroll struct {
		Direction  string `mapstructure:"direction"`
		Curve      string `mapstructure:"curve"`
		Strategy   string `mapstructure:"strategy"`
		DurationMs int    `mapstructure:"duration_ms"`
		PauseMs    int    `mapstructure:"pause_ms"`
		LeadInMs   int    `mapstructure:"lead_in_ms"`
		Spacing    int    `mapstructure:"spacing"`
		AutoStart  bool   `mapstructure:"auto_start"`
	} `mapstructure:"scroll"`
	Labels struct {
		Lines []string `mapstructure:"lines"`
	} `mapstructure:"labels"`
	Timing struct {
		FrameMs int `mapstructure:"frame_ms"`
	} `mapstructure:"timing"`
}

// SafeConfig wraps Config with thread-safe access
type SafeConfig struct {
	mu  sync.RWMutex
	cfg Config
}

// Get returns a copy of the current config (thread-safe read)
func (sc *SafeConfig) Get() Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	cfg := sc.cfg
	cfg.Labels.Lines = append([]string(nil), sc.cfg.Labels.Lines...)
	return cfg
}

// Set updates the config (thread-safe write)
func (sc *SafeConfig) Set(cfg Config) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.cfg = cfg
}

var config = &SafeConfig{}

// Config file changed notification
type configReloadMsg struct{}

var configChangeChan = make(chan struct{}, 1)

// Watch for config file changes
func watchConfigCmd() tea.Cmd {
	return func() tea.Msg {
		<-configChangeChan
		return configReloadMsg{}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.color", "2")
	v.SetDefault("ui.max_width", 40)
	v.SetDefault("ui.bold", false)
	v.SetDefault("scroll.direction", "left")
	v.SetDefault("scroll.curve", "ease-in-out")
	v.SetDefault("scroll.strategy", "continuous")
	v.SetDefault("scroll.duration_ms", 6000)
	v.SetDefault("scroll.pause_ms", 1000)
	v.SetDefault("scroll.lead_in_ms", 500)
	v.SetDefault("scroll.spacing", 4)
	v.SetDefault("scroll.auto_start", true)
	v.SetDefault("labels.lines", []string{
		"Welcome to Metro. This is a Belgrave Limited Express Service, stopping all stations except East Richmond.",
	})
	v.SetDefault("timing.frame_ms", 16)
}

// defaultConfig returns the built-in defaults without reading any file
func defaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("defaults do not unmarshal: %v", err))
	}
	return cfg
}

// bindFlags makes explicitly set command-line flags take precedence
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"ui.color":           "color",
		"ui.max_width":       "width",
		"ui.bold":            "bold",
		"scroll.direction":   "direction",
		"scroll.curve":       "curve",
		"scroll.strategy":    "strategy",
		"scroll.duration_ms": "duration",
		"scroll.spacing":     "spacing",
	}
	for key, name := range bindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

func initConfig(fs *pflag.FlagSet) {
	setDefaults(viper.GetViper())

	// Set config file location following XDG standard
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Check XDG_CONFIG_HOME first, fallback to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			configHome = filepath.Join(homeDir, ".config")
		}
	}

	if configHome != "" {
		viper.AddConfigPath(filepath.Join(configHome, "scrolllabel"))
	}

	// Environment variable support with SCROLLLABEL_ prefix
	viper.SetEnvPrefix("SCROLLLABEL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file (ignore error if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	if err := bindFlags(viper.GetViper(), fs); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	config.Set(loadConfig(viper.GetViper()))

	// Watch for config file changes and live reload
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		config.Set(loadConfig(viper.GetViper()))
		select {
		case configChangeChan <- struct{}{}:
		default:
			// Channel full, skip notification
		}
	})
	viper.WatchConfig()
}

// loadConfig unmarshals v and replaces invalid values with defaults
func loadConfig(v *viper.Viper) Config {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error parsing config: %v\n", err)
		return defaultConfig()
	}
	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Invalid config, using defaults where needed: %v\n", err)
		cfg = sanitizeConfig(cfg)
	}
	return cfg
}

// isValidColor accepts ANSI color codes 0-255 and #RGB / #RRGGBB hex colors
func isValidColor(color string) bool {
	if color == "" {
		return false
	}
	if color[0] == '#' {
		if len(color) != 4 && len(color) != 7 {
			return false
		}
		_, err := colorful.Hex(color)
		return err == nil
	}
	for _, c := range color {
		if c < '0' || c > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(color)
	return err == nil && n <= 255
}

// normalizeColor expands short hex colors; ANSI codes are returned as is
func normalizeColor(color string) string {
	if !strings.HasPrefix(color, "#") {
		return color
	}
	c, err := colorful.Hex(color)
	if err != nil {
		return color
	}
	return c.Hex()
}

// validateConfig reports every invalid setting
func validateConfig(cfg Config) error {
	var errs []error
	if !isValidColor(cfg.UI.Color) {
		errs = append(errs, fmt.Errorf("ui.color: invalid color %q", cfg.UI.Color))
	}
	if cfg.UI.MaxWidth <= 0 {
		errs = append(errs, fmt.Errorf("ui.max_width: must be positive, got %d", cfg.UI.MaxWidth))
	}
	if _, err := marquee.ParseDirection(cfg.Scroll.Direction); err != nil {
		errs = append(errs, fmt.Errorf("scroll.direction: %w", err))
	}
	if _, err := marquee.ParseCurve(cfg.Scroll.Curve); err != nil {
		errs = append(errs, fmt.Errorf("scroll.curve: %w", err))
	}
	if _, err := marquee.ParseStrategy(cfg.Scroll.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("scroll.strategy: %w", err))
	}
	if cfg.Scroll.DurationMs <= 0 {
		errs = append(errs, fmt.Errorf("scroll.duration_ms: must be positive, got %d", cfg.Scroll.DurationMs))
	}
	if cfg.Scroll.PauseMs < 0 {
		errs = append(errs, fmt.Errorf("scroll.pause_ms: must not be negative, got %d", cfg.Scroll.PauseMs))
	}
	if cfg.Scroll.LeadInMs < 0 {
		errs = append(errs, fmt.Errorf("scroll.lead_in_ms: must not be negative, got %d", cfg.Scroll.LeadInMs))
	}
	if cfg.Scroll.Spacing < 0 {
		errs = append(errs, fmt.Errorf("scroll.spacing: must not be negative, got %d", cfg.Scroll.Spacing))
	}
	if cfg.Timing.FrameMs < 1 || cfg.Timing.FrameMs > 1000 {
		errs = append(errs, fmt.Errorf("timing.frame_ms: must be between 1 and 1000, got %d", cfg.Timing.FrameMs))
	}
	return errors.Join(errs...)
}

// sanitizeConfig swaps each invalid setting for its default
func sanitizeConfig(cfg Config) Config {
	def := defaultConfig()
	if !isValidColor(cfg.UI.Color) {
		cfg.UI.Color = def.UI.Color
	}
	if cfg.UI.MaxWidth <= 0 {
		cfg.UI.MaxWidth = def.UI.MaxWidth
	}
	if _, err := marquee.ParseDirection(cfg.Scroll.Direction); err != nil {
		cfg.Scroll.Direction = def.Scroll.Direction
	}
	if _, err := marquee.ParseCurve(cfg.Scroll.Curve); err != nil {
		cfg.Scroll.Curve = def.Scroll.Curve
	}
	if _, err := marquee.ParseStrategy(cfg.Scroll.Strategy); err != nil {
		cfg.Scroll.Strategy = def.Scroll.Strategy
	}
	if cfg.Scroll.DurationMs <= 0 {
		cfg.Scroll.DurationMs = def.Scroll.DurationMs
	}
	if cfg.Scroll.PauseMs < 0 {
		cfg.Scroll.PauseMs = def.Scroll.PauseMs
	}
	if cfg.Scroll.LeadInMs < 0 {
		cfg.Scroll.LeadInMs = def.Scroll.LeadInMs
	}
	if cfg.Scroll.Spacing < 0 {
		cfg.Scroll.Spacing = def.Scroll.Spacing
	}
	if cfg.Timing.FrameMs < 1 || cfg.Timing.FrameMs > 1000 {
		cfg.Timing.FrameMs = def.Timing.FrameMs
	}
	return cfg
}

// labelConfig translates a validated Config into the settings of one label
func labelConfig(cfg Config, text string) marquee.Config {
	c := marquee.DefaultConfig()
	c.Text = text
	c.TextColor = normalizeColor(cfg.UI.Color)
	c.Font = marquee.Font{Family: "terminal", Size: 1}
	if cfg.UI.Bold {
		c.Font.Weight = marquee.Bold
	}
	if d, err := marquee.ParseDirection(cfg.Scroll.Direction); err == nil {
		c.Direction = d
	}
	if curve, err := marquee.ParseCurve(cfg.Scroll.Curve); err == nil {
		c.Curve = curve
	}
	c.Duration = time.Duration(cfg.Scroll.DurationMs) * time.Millisecond
	c.Pause = time.Duration(cfg.Scroll.PauseMs) * time.Millisecond
	c.LeadIn = time.Duration(cfg.Scroll.LeadInMs) * time.Millisecond
	c.Spacing = float64(cfg.Scroll.Spacing)
	c.AutoStart = cfg.Scroll.AutoStart
	return c
}
