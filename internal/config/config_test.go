package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Keyword)
	assert.False(t, cfg.CaseSensitive)
	assert.Equal(t, DefaultReportsDir, cfg.ReportsDir)
	assert.False(t, cfg.AssumeYes)
	assert.Empty(t, cfg.Exclude)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoTUI)
	assert.Equal(t, 200*time.Millisecond, cfg.WatchDebounce)
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{name: "keyword", envKey: "KEYTRIM_KEYWORD", envVal: "DRAFT", field: func(c Config) any { return c.Keyword }, want: "DRAFT"},
		{name: "case_sensitive", envKey: "KEYTRIM_CASE_SENSITIVE", envVal: "true", field: func(c Config) any { return c.CaseSensitive }, want: true},
		{name: "reports_dir", envKey: "KEYTRIM_REPORTS_DIR", envVal: "/tmp/r", field: func(c Config) any { return c.ReportsDir }, want: "/tmp/r"},
		{name: "no_tui", envKey: "KEYTRIM_NO_TUI", envVal: "1", field: func(c Config) any { return c.NoTUI }, want: true},
		{name: "watch_debounce", envKey: "KEYTRIM_WATCH_DEBOUNCE", envVal: "1s", field: func(c Config) any { return c.WatchDebounce }, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			t.Setenv(tt.envKey, tt.envVal)

			require.NoError(t, Init("", t.TempDir()))

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.field(cfg))
		})
	}
}

func TestInit_ReadsConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	content := "keyword: OLD\nexclude:\n  - '\\.jpg$'\nreports_dir: out\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".keytrim.yaml"), []byte(content), 0o600))

	require.NoError(t, Init("", dir))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "OLD", cfg.Keyword)
	assert.Equal(t, []string{`\.jpg$`}, cfg.Exclude)
	assert.Equal(t, "out", cfg.ReportsDir)
}

func TestInit_MissingDefaultFileIsIgnored(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.NoError(t, Init("", t.TempDir()))
}

func TestInit_MissingExplicitFileFails(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBindFlags_FlagOverridesFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".keytrim.yaml"), []byte("keyword: OLD\n"), 0o600))
	require.NoError(t, Init("", dir))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("keyword", "", "")
	flags.Bool("yes", false, "")
	require.NoError(t, flags.Parse([]string{"--keyword", "NEW", "--yes"}))
	require.NoError(t, BindFlags(flags))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "NEW", cfg.Keyword)
	assert.True(t, cfg.AssumeYes)
}

func TestLoad_RejectsNonPositiveDebounce(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("watch_debounce", "0s")

	_, err := Load()
	assert.Error(t, err)
}
