// Package config manages user-level settings stored at
// ~/.config/shortcuts/settings.yaml: the default render mode and the log
// level. Every key can be overridden with a SHORTCUTS_-prefixed environment
// variable.
package config
