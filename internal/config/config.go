package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Locale   LocaleConfig
	Display  DisplayConfig
	Build    BuildConfig
	Journal  JournalConfig
	Log      LogConfig
	Platform PlatformConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title        string
	Color        string
	InitialRoute string `mapstructure:"initial_route"`
}

// LocaleConfig lists the supported locales in priority order. Override, when set, is
// shown instead of the resolved locale.
type LocaleConfig struct {
	Supported []string
	Override  string
}

// DisplayConfig holds the layer toggles.
type DisplayConfig struct {
	PerformanceOverlay    bool `mapstructure:"performance_overlay"`
	CheckerboardRaster    bool `mapstructure:"checkerboard_raster"`
	CheckerboardOffscreen bool `mapstructure:"checkerboard_offscreen"`
	DebugOverlay          bool `mapstructure:"debug_overlay"`
	Inspector             bool
	Banner                bool
}

// BuildConfig selects debug, profile or release behaviour.
type BuildConfig struct {
	Mode string
}

// JournalConfig holds sqlite settings. An empty path disables the journal.
type JournalConfig struct {
	Path string
}

// LogConfig holds logger settings. The TUI owns stdout, so logs go to a file.
type LogConfig struct {
	Level string
	Path  string
	// Development switches to the console encoder with stack traces.
	Development bool
}

// PlatformConfig holds the process event producers.
type PlatformConfig struct {
	DeepLinkFile      string        `mapstructure:"deep_link_file"`
	MemoryThresholdMB uint64        `mapstructure:"memory_threshold_mb"`
	MemoryInterval    time.Duration `mapstructure:"memory_interval"`
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "appshell")
}

// Load reads configuration from file and env. Env var overrides use prefix APPSHELL_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("APPSHELL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "appshell"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("APPSHELL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.title", "appshell")
	v.SetDefault("ui.color", "#89b4fa")
	v.SetDefault("ui.initial_route", "/")
	v.SetDefault("locale.supported", []string{"en_US"})
	v.SetDefault("locale.override", "")
	v.SetDefault("display.performance_overlay", false)
	v.SetDefault("display.checkerboard_raster", false)
	v.SetDefault("display.checkerboard_offscreen", false)
	v.SetDefault("display.debug_overlay", false)
	v.SetDefault("display.inspector", false)
	v.SetDefault("display.banner", true)
	v.SetDefault("build.mode", "debug")
	v.SetDefault("journal.path", filepath.Join(dataDir(), "journal.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(dataDir(), "appshell.log"))
	v.SetDefault("log.development", false)
	v.SetDefault("platform.deep_link_file", "")
	v.SetDefault("platform.memory_threshold_mb", 0)
	v.SetDefault("platform.memory_interval", "5s")
}
