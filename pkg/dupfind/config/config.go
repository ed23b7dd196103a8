package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Path    string `mapstructure:"path"`
	Console bool   `mapstructure:"console"`
}

// Config represents the application configuration.
type Config struct {
	Algorithm     string        `mapstructure:"algorithm"`
	ChunkSize     int           `mapstructure:"chunk_size"`
	Interval      string        `mapstructure:"interval"`
	QuarantineDir string        `mapstructure:"quarantine_dir"`
	Output        string        `mapstructure:"output"`
	Extensions    []string      `mapstructure:"extensions"`
	Exclude       []string      `mapstructure:"exclude"`
	MaxDepth      int           `mapstructure:"max_depth"`
	MaxSizeMB     float64       `mapstructure:"max_size_mb"`
	Logging       LoggingConfig `mapstructure:"logging"`
}

// SetDefaults registers configuration defaults on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("algorithm", DefaultAlgorithm)
	v.SetDefault("chunk_size", DefaultChunkSize)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("quarantine_dir", DefaultQuarantineDir)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("extensions", []string{})
	v.SetDefault("exclude", []string{})
	v.SetDefault("max_depth", 0)
	v.SetDefault("max_size_mb", 0.0)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "") // Empty means use the XDG state path.
	v.SetDefault("logging.console", false)
}

// AttachSources registers the config file search paths and environment
// bindings on a viper instance. Both Load and the CLI's viper go through
// here so the two resolve configuration identically.
//
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/dupfind/config.yaml
//   - $HOME/.config/dupfind/config.yaml
//
// Environment variables are prefixed with DUPFIND_ (e.g., DUPFIND_ALGORITHM).
func AttachSources(v *viper.Viper) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "dupfind"))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "dupfind"))
	}

	v.SetEnvPrefix("DUPFIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from file and environment variables into a
// Config, applying defaults for everything unset.
func Load() (*Config, error) {
	v := viper.New()
	AttachSources(v)
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing config file is fine; defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "dupfind")
}

// ConfigFilePath returns the path of the configuration file, whether or
// not it exists.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// WriteDefault creates the configuration file with commented defaults.
// An existing file is left untouched.
func WriteDefault() error {
	path := ConfigFilePath()
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	content := fmt.Sprintf(`# dupfind configuration
# Environment variables with the DUPFIND_ prefix override these values.

# Checksum algorithm: md5, sha1, sha256, xxh64
algorithm: %s

# Hashing read buffer size in bytes
chunk_size: %d

# Progress reporting period
interval: %s

# Quarantine subdirectory name
quarantine_dir: %s

# Report format: plain, pretty, json, yaml
output: %s

# Limit the scan to these extensions (empty means all files)
extensions: []

# Glob patterns for paths to skip
exclude: []

# Maximum depth to traverse (0 means unlimited)
max_depth: 0

# Maximum file size to process in MB (0 means unlimited)
max_size_mb: 0

logging:
  level: %s
  # path: %s
  console: false
`,
		DefaultAlgorithm, DefaultChunkSize, DefaultInterval,
		DefaultQuarantineDir, DefaultOutput, DefaultLogLevel, DefaultLogPath())

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// StateDir returns $XDG_STATE_HOME/dupfind/ for log files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "dupfind")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), "dupfind.log")
}

// ExpandPath expands a leading ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, path[1:]), nil
}
