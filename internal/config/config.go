// Package config holds the portfolio configuration: where content and media
// live, how the HTTP surface listens, where static builds go and how the
// page effects are tuned.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/effects/observe"
	"github.com/Zachkp/portfolio/internal/view"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_HTTP_PORT.
const EnvPrefix = "PORTFOLIO"

// Gin modes accepted by http.mode.
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"
)

// Config represents the application configuration.
type Config struct {
	Content ContentConfig `mapstructure:"content"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Log     LogConfig     `mapstructure:"log"`
	Build   BuildConfig   `mapstructure:"build"`
	Effects EffectsConfig `mapstructure:"effects"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Build.Validate(); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if err := c.Effects.Validate(); err != nil {
		return fmt.Errorf("effects: %w", err)
	}
	return nil
}

// ContentConfig locates the content document and the media directory.
// An empty Path selects the built-in document.
type ContentConfig struct {
	Path     string `mapstructure:"path"`
	MediaDir string `mapstructure:"media_dir"`
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Mode, validation.Required, validation.In(ModeDebug, ModeRelease, ModeTest)),
		validation.Field(&c.ShutdownTimeout, validation.Min(time.Duration(0))),
	)
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
	)
}

// BuildConfig holds static export settings.
type BuildConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	BaseURL   string `mapstructure:"base_url"`
}

// Validate validates the build configuration.
func (c *BuildConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OutputDir, validation.Required),
	)
}

// EffectsConfig tunes the page effects.
type EffectsConfig struct {
	TypingSpeed        time.Duration `mapstructure:"typing_speed"`
	DeletingSpeed      time.Duration `mapstructure:"deleting_speed"`
	PauseAfterTyping   time.Duration `mapstructure:"pause_after_typing"`
	PauseAfterDeleting time.Duration `mapstructure:"pause_after_deleting"`
	CaretBlink         time.Duration `mapstructure:"caret_blink"`

	RevealThreshold  float64       `mapstructure:"reveal_threshold"`
	RevealMargin     string        `mapstructure:"reveal_margin"`
	RevealTransition time.Duration `mapstructure:"reveal_transition"`

	TrackerThreshold float64 `mapstructure:"tracker_threshold"`
	TrackerMargin    string  `mapstructure:"tracker_margin"`

	ParallaxTranslate float64 `mapstructure:"parallax_translate"`
	ParallaxRotate    float64 `mapstructure:"parallax_rotate"`
	GlowSize          float64 `mapstructure:"glow_size"`

	ScrollThreshold float64 `mapstructure:"scroll_threshold"`
}

var positive = []validation.Rule{validation.Required, validation.Min(time.Millisecond)}

// Validate validates the effect settings.
func (c *EffectsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TypingSpeed, positive...),
		validation.Field(&c.DeletingSpeed, positive...),
		validation.Field(&c.PauseAfterTyping, validation.Min(time.Duration(0))),
		validation.Field(&c.PauseAfterDeleting, validation.Min(time.Duration(0))),
		validation.Field(&c.CaretBlink, validation.Min(time.Duration(0))),
		validation.Field(&c.RevealThreshold, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.RevealMargin, validation.By(isMargin)),
		validation.Field(&c.RevealTransition, validation.Min(time.Duration(0))),
		validation.Field(&c.TrackerThreshold, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.TrackerMargin, validation.By(isMargin)),
		validation.Field(&c.GlowSize, validation.Min(0.0)),
		validation.Field(&c.ScrollThreshold, validation.Min(0.0)),
	)
}

func isMargin(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := observe.ParseMargin(s); err != nil {
		return errors.New("must be a CSS margin such as \"0px 0px -100px 0px\"")
	}
	return nil
}

// ViewOptions converts the settings into view options.
func (c *EffectsConfig) ViewOptions() (view.Options, error) {
	opts := view.DefaultOptions()

	opts.Typewriter.TypingSpeed = c.TypingSpeed
	opts.Typewriter.DeletingSpeed = c.DeletingSpeed
	opts.Typewriter.PauseAfterTyping = c.PauseAfterTyping
	opts.Typewriter.PauseAfterDeleting = c.PauseAfterDeleting
	opts.Typewriter.CaretBlink = c.CaretBlink

	opts.Reveal.Threshold = c.RevealThreshold
	opts.Reveal.Transition = c.RevealTransition
	if c.RevealMargin != "" {
		m, err := observe.ParseMargin(c.RevealMargin)
		if err != nil {
			return view.Options{}, fmt.Errorf("reveal margin: %w", err)
		}
		opts.Reveal.RootMargin = m
	}

	opts.Tracker.Threshold = c.TrackerThreshold
	if c.TrackerMargin != "" {
		m, err := observe.ParseMargin(c.TrackerMargin)
		if err != nil {
			return view.Options{}, fmt.Errorf("tracker margin: %w", err)
		}
		opts.Tracker.RootMargin = m
	}

	opts.Parallax.TranslateFactor = c.ParallaxTranslate
	opts.Parallax.RotateFactor = c.ParallaxRotate
	opts.Parallax.GlowSize = c.GlowSize
	opts.ScrollThreshold = c.ScrollThreshold
	return opts, nil
}

// SetDefaults registers the stock values on v.
func SetDefaults(v *viper.Viper) {
	d := view.DefaultOptions()

	v.SetDefault("content.path", "")
	v.SetDefault("content.media_dir", "media")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.mode", ModeRelease)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("build.output_dir", "public")
	v.SetDefault("build.base_url", "")

	v.SetDefault("effects.typing_speed", d.Typewriter.TypingSpeed)
	v.SetDefault("effects.deleting_speed", d.Typewriter.DeletingSpeed)
	v.SetDefault("effects.pause_after_typing", d.Typewriter.PauseAfterTyping)
	v.SetDefault("effects.pause_after_deleting", d.Typewriter.PauseAfterDeleting)
	v.SetDefault("effects.caret_blink", d.Typewriter.CaretBlink)
	v.SetDefault("effects.reveal_threshold", d.Reveal.Threshold)
	v.SetDefault("effects.reveal_margin", d.Reveal.RootMargin.String())
	v.SetDefault("effects.reveal_transition", d.Reveal.Transition)
	v.SetDefault("effects.tracker_threshold", d.Tracker.Threshold)
	v.SetDefault("effects.tracker_margin", d.Tracker.RootMargin.String())
	v.SetDefault("effects.parallax_translate", d.Parallax.TranslateFactor)
	v.SetDefault("effects.parallax_rotate", d.Parallax.RotateFactor)
	v.SetDefault("effects.glow_size", d.Parallax.GlowSize)
	v.SetDefault("effects.scroll_threshold", d.ScrollThreshold)
}

// Load reads configuration from file (or ./portfolio.yaml when file is
// empty), the environment and defaults, then validates it. A missing default
// file is not an error; a missing explicit file is.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
