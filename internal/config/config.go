package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level gcrs configuration.
type Config struct {
	ScanRoot        string   `mapstructure:"scan_root"`
	OutputDir       string   `mapstructure:"output_dir"`
	TablesFile      string   `mapstructure:"tables_file"`
	ExtraSkipDirs   []string `mapstructure:"extra_skip_dirs"`
	Workers         int      `mapstructure:"workers"`
	ShebangFallback bool     `mapstructure:"shebang_fallback"`
	Server          Server   `mapstructure:"server"`
	Log             Log      `mapstructure:"log"`
}

// Server defines the HTTP serve-mode settings.
type Server struct {
	Addr string `mapstructure:"addr"`
}

// Log defines the rotating log file settings.
type Log struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("scan_root", DefaultScanRoot)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("tables_file", "")
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("shebang_fallback", false)
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("log.file", DefaultLog.File)
	v.SetDefault("log.level", DefaultLog.Level)
	v.SetDefault("log.max_size_mb", DefaultLog.MaxSizeMB)
	v.SetDefault("log.max_backups", DefaultLog.MaxBackups)
	v.SetDefault("log.max_age_days", DefaultLog.MaxAgeDays)
	v.SetDefault("log.compress", DefaultLog.Compress)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Expand paths.
	cfg.TablesFile = expandPath(cfg.TablesFile)
	cfg.Log.File = expandPath(cfg.Log.File)

	return &cfg, nil
}

// DBPath returns the full path to the scan-history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
