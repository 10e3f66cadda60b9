package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DatabaseConfig holds settings for the local key-value database.
type DatabaseConfig struct {
	// Path is the SQLite database file.
	Path string `mapstructure:"path" yaml:"path"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// StartView is the view shown on launch: "dashboard", "meetings",
	// or "notes".
	StartView string `mapstructure:"start_view" yaml:"start_view"`

	// DateFormat is the Go reference layout used to render meeting
	// dates in lists and detail panes.
	DateFormat string `mapstructure:"date_format" yaml:"date_format"`
}

// ExportConfig holds settings for file export.
type ExportConfig struct {
	// Dir is the directory JSON/CSV exports are written to.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// LogConfig holds settings for the application log file.
type LogConfig struct {
	// Dir is the directory log files are written to.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// MaxFiles is how many timestamped log files to keep.
	MaxFiles int `mapstructure:"max_files" yaml:"max_files"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
	Export   ExportConfig   `mapstructure:"export" yaml:"export"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/meeting-tracker/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "meeting-tracker", "config.yaml")
}

// defaultDataDir returns the directory used for the database and logs.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "meeting-tracker")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dataDir := defaultDataDir()
	return &AppConfig{
		Database: DatabaseConfig{
			Path: filepath.Join(dataDir, "tracker.db"),
		},
		Display: DisplayConfig{
			StartView:  "dashboard",
			DateFormat: "2006-01-02",
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Log: LogConfig{
			Dir:      filepath.Join(dataDir, "logs"),
			MaxFiles: 5,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using
// Viper. If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	def := defaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("display.start_view", def.Display.StartView)
	v.SetDefault("display.date_format", def.Display.DateFormat)
	v.SetDefault("export.dir", def.Export.Dir)
	v.SetDefault("log.dir", def.Log.Dir)
	v.SetDefault("log.max_files", def.Log.MaxFiles)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return def, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return def, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("display", cfg.Display)
	v.Set("export", cfg.Export)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
