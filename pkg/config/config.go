package config

import (
	"os"
	"path/filepath"

	"github.com/pexy-app/pexy-data/pkg/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Backup  BackupConfig  `mapstructure:"backup"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataConfig locates the persisted state: one database file and the
// custom-pictogram image directory, both under Dir.
type DataConfig struct {
	Dir          string `mapstructure:"dir"`
	DatabaseFile string `mapstructure:"database_file"`
}

type BackupConfig struct {
	// CleanupDelaySeconds is how long an exported file is kept before the
	// deferred cleanup reclaims it.
	CleanupDelaySeconds int `mapstructure:"cleanup_delay_seconds"`
}

type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	File      string `mapstructure:"file"`
	GormLevel string `mapstructure:"gorm_level"`
}

var AppConfig Config

const defaultDatabaseFile = "pexy.db"

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pexy"
	}
	return filepath.Join(home, ".pexy")
}

// LoadConfig reads the YAML config at path into AppConfig. An empty path
// falls back to <data dir>/config.yaml, and a missing search-path file is
// not an error: the defaults stay in place.
func LoadConfig(path string) error {
	v := viper.New()
	v.SetDefault("data.dir", defaultDataDir())
	v.SetDefault("data.database_file", defaultDatabaseFile)
	v.SetDefault("backup.cleanup_delay_seconds", 5)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.gorm_level", "warn")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultDataDir())
	}

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound {
			logger.Error("failed to read config file", "path", path, "error", err)
			return err
		}
		writeDefaultConfig(v)
	}

	if err := v.Unmarshal(&AppConfig); err != nil {
		logger.Error("failed to decode config file", "path", path, "error", err)
		return err
	}

	return nil
}

// writeDefaultConfig materializes the defaults on first run so the user has
// a file to edit. Best-effort: a failure is logged, never fatal.
func writeDefaultConfig(v *viper.Viper) {
	dir := defaultDataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("failed to create config directory", "dir", dir, "error", err)
		return
	}
	target := filepath.Join(dir, "config.yaml")
	if err := v.SafeWriteConfigAs(target); err != nil {
		logger.Error("failed to write default config", "path", target, "error", err)
	}
}

// DatabasePath returns the full path of the embedded database file.
func (c DataConfig) DatabasePath() string {
	file := c.DatabaseFile
	if file == "" {
		file = defaultDatabaseFile
	}
	return filepath.Join(c.Dir, file)
}
