package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nagygr/shortcuts/internal/branding"
	"github.com/nagygr/shortcuts/internal/registry"
)

// File name constants for the config directory.
const (
	SettingsFile = "settings.yaml"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetHome returns the directory that relative application config paths are
// resolved against. It checks the SHORTCUTS_HOME environment variable first,
// then falls back to the OS user home directory.
func GetHome() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home, nil
}

// GetConfigDir returns the config directory under the resolved home.
func GetConfigDir() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return registry.Dir(home), nil
}

// GetRegistryPath returns the path of the application registry file.
func GetRegistryPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return registry.Path(home), nil
}

// GetSettingsPath returns the path of settings.yaml in the config directory.
func GetSettingsPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFile), nil
}
