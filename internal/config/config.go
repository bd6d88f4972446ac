// Package config loads keytrim settings from .keytrim.yaml, KEYTRIM_* env
// vars and CLI flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultReportsDir is where execute reports are stored unless configured.
const DefaultReportsDir = ".keytrim-reports"

// Config holds all runtime configuration for a keytrim invocation.
type Config struct {
	Keyword       string        `mapstructure:"keyword"`
	CaseSensitive bool          `mapstructure:"case_sensitive"`
	ReportsDir    string        `mapstructure:"reports_dir"`
	AssumeYes     bool          `mapstructure:"assume_yes"`
	Exclude       []string      `mapstructure:"exclude"`
	Verbose       bool          `mapstructure:"verbose"`
	NoTUI         bool          `mapstructure:"no_tui"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"keyword":        "keyword",
	"case-sensitive": "case_sensitive",
	"reports-dir":    "reports_dir",
	"yes":            "assume_yes",
	"exclude":        "exclude",
	"verbose":        "verbose",
	"no-tui":         "no_tui",
	"debounce":       "watch_debounce",
}

// Init points viper at the config file and the environment. An explicit
// file must exist; the default .keytrim.yaml is optional.
func Init(cfgFile string, searchPaths ...string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".keytrim")
		viper.SetConfigType("yaml")

		for _, path := range searchPaths {
			viper.AddConfigPath(path)
		}
	}

	viper.SetEnvPrefix("KEYTRIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// BindFlags binds every known flag present in flags to its config key so
// that flags set on the command line take precedence.
func BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("keyword", "")
	viper.SetDefault("case_sensitive", false)
	viper.SetDefault("reports_dir", DefaultReportsDir)
	viper.SetDefault("assume_yes", false)
	viper.SetDefault("exclude", []string{})
	viper.SetDefault("verbose", false)
	viper.SetDefault("no_tui", false)
	viper.SetDefault("watch_debounce", 200*time.Millisecond)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.WatchDebounce <= 0 {
		return Config{}, fmt.Errorf("decode config: watch_debounce must be positive, got %s", cfg.WatchDebounce)
	}

	return cfg, nil
}
