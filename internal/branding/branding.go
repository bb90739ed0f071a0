// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults apply when a key is missing.
package branding

import (
	_ "embed"
	"path/filepath"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	ConfigDir    string `yaml:"config_dir"`
	RegistryFile string `yaml:"registry_file"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:      "shortcuts",
			DisplayName:  "Shortcuts",
			Description:  "Extract keyboard shortcuts from application config files",
			ConfigDir:    ".config/shortcuts",
			RegistryFile: "shortcuts.conf",
			EnvPrefix:    "SHORTCUTS",
			GoModule:     "github.com/nagygr/shortcuts",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "shortcuts").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfigDir returns the config directory relative to $HOME in OS form
// (e.g., ".config/shortcuts").
func ConfigDir() string { load(); return filepath.FromSlash(defaults.ConfigDir) }

// RegistryFile returns the registry file name inside ConfigDir.
func RegistryFile() string { load(); return defaults.RegistryFile }

// EnvPrefix returns the environment variable prefix (e.g., "SHORTCUTS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "SHORTCUTS_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
