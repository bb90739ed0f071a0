package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nagygr/shortcuts/internal/branding"
	"github.com/nagygr/shortcuts/internal/logging"
	"github.com/nagygr/shortcuts/internal/render"
	"github.com/nagygr/shortcuts/internal/userdata"
)

const (
	fileName = "settings"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyMode     = "mode"
	KeyLogLevel = "log_level"
)

// Dir returns the config directory (~/.config/shortcuts/).
func Dir() string {
	dir, err := userdata.GetConfigDir()
	if err != nil {
		return filepath.Join(".", branding.ConfigDir())
	}
	return dir
}

// FilePath returns the full path to the settings file (~/.config/shortcuts/settings.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, userdata.DirPermNormal); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the settings file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyMode, render.ModePlain.String())
	viper.SetDefault(KeyLogLevel, logging.DefaultLevel)

	// Ignore error if the settings file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a setting by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Mode returns the configured default render mode.
func Mode() (render.Mode, error) {
	return render.ParseMode(Get(KeyMode))
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return Get(KeyLogLevel)
}

// Set validates and writes a key-value pair and saves the settings file.
func Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating settings file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	return nil
}

func validate(key, value string) error {
	switch key {
	case KeyMode:
		_, err := render.ParseMode(value)
		return err
	case KeyLogLevel:
		_, err := logging.ParseLevel(value)
		return err
	default:
		return fmt.Errorf("unknown setting %q (valid: %s, %s)", key, KeyMode, KeyLogLevel)
	}
}
