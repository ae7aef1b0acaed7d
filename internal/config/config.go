package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Deck         string           `mapstructure:"deck"`
	DecksDir     string           `mapstructure:"decks_dir"`
	LogFile      string           `mapstructure:"log_file"`
	Animation    AnimationConfig  `mapstructure:"animation"`
	Transition   TransitionConfig `mapstructure:"transition"`
	Remote       RemoteConfig     `mapstructure:"remote"`
	BuildVersion string           `mapstructure:"-"`
}

type AnimationConfig struct {
	Default  string        `mapstructure:"default"`
	Duration time.Duration `mapstructure:"duration"`
	FPS      int           `mapstructure:"fps"`
	Curve    string        `mapstructure:"curve"`
}

type TransitionConfig struct {
	Default  string        `mapstructure:"default"`
	Duration time.Duration `mapstructure:"duration"`
}

// RemoteConfig holds the MQTT clicker settings.
type RemoteConfig struct {
	Enabled  bool         `mapstructure:"enabled"`
	URL      string       `mapstructure:"url"`
	Username string       `mapstructure:"username"`
	Password string       `mapstructure:"password"`
	ClientID string       `mapstructure:"client_id"`
	Topics   TopicsConfig `mapstructure:"topics"`
}

type TopicsConfig struct {
	Command string `mapstructure:"command"`
	Status  string `mapstructure:"status"`
}

// EnvPrefix prefixes environment overrides, e.g. REVEALER_ANIMATION_FPS.
const EnvPrefix = "REVEALER"

func setDefaults(v *viper.Viper) {
	v.SetDefault("deck", "")
	v.SetDefault("decks_dir", "decks")
	v.SetDefault("log_file", "revealer.log")
	v.SetDefault("animation.default", "appear")
	v.SetDefault("animation.duration", 600*time.Millisecond)
	v.SetDefault("animation.fps", 30)
	v.SetDefault("animation.curve", "in-out-cubic")
	v.SetDefault("transition.default", "fade")
	v.SetDefault("transition.duration", 800*time.Millisecond)
	v.SetDefault("remote.enabled", false)
	v.SetDefault("remote.url", "tcp://localhost:1883")
	v.SetDefault("remote.username", "")
	v.SetDefault("remote.password", "")
	v.SetDefault("remote.client_id", "")
	v.SetDefault("remote.topics.command", "revealer/command")
	v.SetDefault("remote.topics.status", "revealer/status")
}

// Load reads configuration from defaults, a YAML file and the environment.
// An explicit path must exist; without one revealer.yaml is looked up in the
// working directory and skipped when absent.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("revealer")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, c.Validate()
}

// Validate checks values that would break playback.
func (c Config) Validate() error {
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("animation.fps must be positive, got %d", c.Animation.FPS)
	}
	if c.Animation.Duration < 0 || c.Transition.Duration < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if c.Remote.Enabled && c.Remote.URL == "" {
		return fmt.Errorf("remote.url is required when the remote is enabled")
	}
	return nil
}
